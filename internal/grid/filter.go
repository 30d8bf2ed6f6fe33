package grid

import (
	"fmt"
)

// ColumnOf finds the position of target among its row's siblings. The
// visual layout is the source of truth for which column was clicked.
func ColumnOf[T comparable](siblings []T, target T) (Column, error) {
	for i, s := range siblings {
		if s == target {
			return Column(i), nil
		}
	}
	return 0, ErrNoColumn
}

// Bounds is the horizontal extent [Start, End) of a rendered column.
type Bounds struct {
	Start int
	End   int
}

// Contains reports whether x falls inside b.
func (b Bounds) Contains(x int) bool {
	return x >= b.Start && x < b.End
}

// ColumnAt resolves an x offset against rendered column bounds: the
// clicked extent is located first, then its position among the row's
// extents gives the column.
func ColumnAt(bounds []Bounds, x int) (Column, error) {
	for _, b := range bounds {
		if !b.Contains(x) {
			continue
		}
		col, err := ColumnOf(bounds, b)
		if err != nil {
			break
		}
		return col, nil
	}
	return 0, fmt.Errorf("x=%d: %w", x, ErrNoColumn)
}

// Filter moves the rows whose value in col equals the value at (row, col)
// ahead of all others, preserving relative order in both groups, and
// returns a freshly merged grid.
func Filter(g *Grid, row int, col Column) (*Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	target, err := g.Value(row, col)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	src := g.Cleared()
	match := make([]Row, 0, len(src.rows))
	var rest []Row
	for _, r := range src.rows {
		if r[col].Value == target {
			match = append(match, r)
		} else {
			rest = append(rest, r)
		}
	}
	src.Replace(append(match, rest...))
	return Merge(src), nil
}
