package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/natefinch/atomic"
	"github.com/s22625/utilview/internal/grid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// descClass marks cells a reader can click to sort or filter.
const descClass = "desc"

// WriteHTML renders the grid as a utilization table. Run-heads carry a
// rowspan, absorbed cells are emitted with the hidden attribute, and
// descriptive columns carry the desc class.
func WriteHTML(w io.Writer, headers []string, g *grid.Grid) error {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "utilization"})

	thead := element(atom.Thead)
	htr := element(atom.Tr)
	for i, h := range headers {
		th := element(atom.Th)
		if grid.IsSortable(grid.Column(i)) {
			th.Attr = append(th.Attr, html.Attribute{Key: "class", Val: descClass})
		}
		th.AppendChild(&html.Node{Type: html.TextNode, Data: h})
		htr.AppendChild(th)
	}
	thead.AppendChild(htr)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range g.Rows() {
		tr := element(atom.Tr)
		for i, cell := range row {
			tr.AppendChild(cellNode(grid.Column(i), cell))
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	if err := html.Render(w, table); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ExportHTML writes the table to path atomically.
func ExportHTML(path string, headers []string, g *grid.Grid) error {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, headers, g); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func cellNode(col grid.Column, cell grid.Cell) *html.Node {
	td := element(atom.Td)
	if grid.IsSortable(col) {
		td.Attr = append(td.Attr, html.Attribute{Key: "class", Val: descClass})
	}
	if cell.Span > 1 {
		td.Attr = append(td.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(cell.Span)})
	}
	if !cell.Visible {
		td.Attr = append(td.Attr, html.Attribute{Key: "hidden"})
	}
	td.AppendChild(&html.Node{Type: html.TextNode, Data: cell.Value})
	return td
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
