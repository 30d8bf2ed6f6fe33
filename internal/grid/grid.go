package grid

import (
	"errors"
	"fmt"
)

// Column indexes a logical report column.
type Column int

const (
	ColValue Column = iota
	ColIP
	ColTransport
	ColDirection
	ColTest
	ColModifier
)

const (
	// NumColumns is the number of logical columns in a utilization report.
	NumColumns = 6
	// mergeColumns bounds the columns inspected by Merge.
	mergeColumns = 6
)

var (
	ErrUnsortableColumn = errors.New("column is not sortable")
	ErrNoColumn         = errors.New("click target not found among row cells")
	ErrRowOutOfRange    = errors.New("row out of range")
)

// StructuralError reports a row whose cell count differs from the first row.
type StructuralError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("inhomogeneous cell count: %d vs %d (row %d)", e.Actual, e.Expected, e.Row)
}

// Cell is a value plus its merge annotation.
type Cell struct {
	Value   string `json:"value"`
	Span    int    `json:"span"`
	Visible bool   `json:"visible"`
}

// Row is one measurement.
type Row []Cell

// Grid is an ordered snapshot of rows. Engines derive new grids and never
// mutate the one they are given.
type Grid struct {
	rows []Row
}

func newCell(value string) Cell {
	return Cell{Value: value, Span: 1, Visible: true}
}

// New builds a grid with every cell unmerged.
func New(values [][]string) *Grid {
	rows := make([]Row, len(values))
	for i, vals := range values {
		row := make(Row, len(vals))
		for j, v := range vals {
			row[j] = newCell(v)
		}
		rows[i] = row
	}
	return &Grid{rows: rows}
}

// Rows returns the ordered rows. Callers must not modify them.
func (g *Grid) Rows() []Row {
	return g.rows
}

// Len returns the row count.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Replace swaps the entire row sequence.
func (g *Grid) Replace(rows []Row) {
	g.rows = rows
}

// Validate checks that every row has the first row's cell count.
func (g *Grid) Validate() error {
	if len(g.rows) == 0 {
		return nil
	}
	want := len(g.rows[0])
	for i, row := range g.rows[1:] {
		if len(row) != want {
			return &StructuralError{Row: i + 1, Expected: want, Actual: len(row)}
		}
	}
	return nil
}

// Values returns the raw cell values in row order.
func (g *Grid) Values() [][]string {
	out := make([][]string, len(g.rows))
	for i, row := range g.rows {
		vals := make([]string, len(row))
		for j, cell := range row {
			vals[j] = cell.Value
		}
		out[i] = vals
	}
	return out
}

// Cleared returns a copy with merge metadata reset: every cell has Span 1
// and is visible.
func (g *Grid) Cleared() *Grid {
	return New(g.Values())
}

// Value returns the value at (row, col).
func (g *Grid) Value(row int, col Column) (string, error) {
	if row < 0 || row >= len(g.rows) {
		return "", fmt.Errorf("row %d of %d: %w", row, len(g.rows), ErrRowOutOfRange)
	}
	if col < 0 || int(col) >= len(g.rows[row]) {
		return "", fmt.Errorf("column %d of %d: %w", col, len(g.rows[row]), ErrNoColumn)
	}
	return g.rows[row][col].Value, nil
}

// RunHead returns the index of the visible cell covering (row, col).
func (g *Grid) RunHead(row int, col Column) int {
	for row > 0 && int(col) < len(g.rows[row]) && !g.rows[row][col].Visible {
		row--
	}
	return row
}
