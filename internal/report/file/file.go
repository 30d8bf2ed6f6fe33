package file

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/s22625/utilview/internal/report"
	"golang.org/x/net/html"
)

// TableClass is the class of the report table inside an HTML document.
const TableClass = "utilization"

// FileSource implements report.Source for HTML, TSV and CSV files
type FileSource struct {
	path string
}

// New creates a FileSource after checking the file exists and has a
// supported extension.
func New(path string) (*FileSource, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid report path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("report does not exist: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("report path is a directory: %s", absPath)
	}
	if _, err := formatOf(absPath); err != nil {
		return nil, err
	}

	return &FileSource{path: absPath}, nil
}

// Path returns the report file path
func (s *FileSource) Path() string {
	return s.path
}

// Load parses the report file
func (s *FileSource) Load() (*report.Report, error) {
	format, err := formatOf(s.path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case "html":
		return ParseHTML(f)
	case "tsv":
		return ParseDelimited(f, '\t')
	default:
		return ParseDelimited(f, ',')
	}
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "html", nil
	case ".tsv", ".txt":
		return "tsv", nil
	case ".csv":
		return "csv", nil
	default:
		return "", fmt.Errorf("unsupported report format: %s (want .html, .tsv or .csv)", filepath.Base(path))
	}
}

// ParseDelimited reads a header record followed by data records. Records
// with differing field counts are kept.
func ParseDelimited(r io.Reader, comma rune) (*report.Report, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse report: empty input")
	}
	rep := &report.Report{Header: trimAll(records[0])}
	for _, rec := range records[1:] {
		rep.Rows = append(rep.Rows, trimAll(rec))
	}
	return rep, nil
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

// ParseHTML extracts the first table with class "utilization". The first
// row of its thead is the header; every tbody row is a data row.
func ParseHTML(r io.Reader) (*report.Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	tables := findNodes(doc, func(n *html.Node) bool {
		return isElement(n, "table") && hasClass(n, TableClass)
	})
	if len(tables) == 0 {
		return nil, fmt.Errorf("parse report: no table with class %q", TableClass)
	}
	table := tables[0]

	rep := &report.Report{}
	if heads := findNodes(table, func(n *html.Node) bool { return isElement(n, "thead") }); len(heads) > 0 {
		if rows := childElements(heads[0], "tr"); len(rows) > 0 {
			rep.Header = cellTexts(rows[0])
		}
	}
	for _, body := range findNodes(table, func(n *html.Node) bool { return isElement(n, "tbody") }) {
		for _, tr := range childElements(body, "tr") {
			rep.Rows = append(rep.Rows, cellTexts(tr))
		}
	}
	return rep, nil
}

func cellTexts(tr *html.Node) []string {
	var out []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, "td") || isElement(c, "th") {
			out = append(out, strings.TrimSpace(collectText(c)))
		}
	}
	return out
}

func childElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, tag) {
			out = append(out, c)
		}
	}
	return out
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func collectText(node *html.Node) string {
	var b strings.Builder
	for _, n := range findNodes(node, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		b.WriteString(n.Data)
	}
	return b.String()
}

func findNodes(node *html.Node, want func(*html.Node) bool) []*html.Node {
	if want(node) {
		return []*html.Node{node}
	}
	var results []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		results = append(results, findNodes(child, want)...)
	}
	return results
}
