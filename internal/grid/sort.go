package grid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseColumn resolves a sortable column from its number (1-5) or header name.
func ParseColumn(value string) (Column, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if n, err := strconv.Atoi(trimmed); err == nil {
		col := Column(n)
		if !IsSortable(col) {
			return 0, fmt.Errorf("column %d: %w", n, ErrUnsortableColumn)
		}
		return col, nil
	}
	for _, col := range sortableColumns {
		if strings.ToLower(columnRegistry[col].Header) == trimmed {
			return col, nil
		}
	}
	return 0, fmt.Errorf("invalid sort column %q (valid: 1-5, %s)", value, strings.Join(SortableHeaders(), ", "))
}

// IsSortable reports whether col is a descriptive column.
func IsSortable(col Column) bool {
	return col >= ColIP && col <= ColModifier
}

// nextCascade advances through the descriptive columns, wrapping
// ColModifier back to ColIP. ColValue is never visited.
func nextCascade(col Column) Column {
	if col >= ColModifier {
		return ColIP
	}
	return col + 1
}

// compareCascade compares two rows starting at col and falling through the
// other descriptive columns until a difference is found or the cycle returns
// to col.
func compareCascade(a, b Row, col Column) int {
	c := col
	for {
		if cmp := strings.Compare(a[c].Value, b[c].Value); cmp != 0 {
			return cmp
		}
		c = nextCascade(c)
		if c == col {
			return 0
		}
	}
}

// Sort orders rows ascending by col with a cascading tie-break and returns a
// freshly merged grid. Fully tied rows keep their input order.
func Sort(g *Grid, col Column) (*Grid, error) {
	if !IsSortable(col) {
		return nil, fmt.Errorf("sort by column %d: %w", col, ErrUnsortableColumn)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Len() > 0 && len(g.rows[0]) <= int(ColModifier) {
		return nil, &StructuralError{Row: 0, Expected: NumColumns, Actual: len(g.rows[0])}
	}

	out := g.Cleared()
	sort.SliceStable(out.rows, func(i, j int) bool {
		return compareCascade(out.rows[i], out.rows[j], col) < 0
	})
	return Merge(out), nil
}
