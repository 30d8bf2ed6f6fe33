package grid

// Merge collapses vertically adjacent equal, non-empty values into spanning
// cells. Each column keeps its own run-head, so runs in different columns
// may have different lengths. Row order is preserved.
func Merge(g *Grid) *Grid {
	out := g.Cleared()
	rows := out.rows
	if len(rows) == 0 {
		return out
	}

	var heads [mergeColumns]int
	for r := 1; r < len(rows); r++ {
		for c := 0; c < mergeColumns && c < len(rows[r]); c++ {
			if c >= len(rows[heads[c]]) {
				heads[c] = r
				continue
			}
			head := &rows[heads[c]][c]
			cell := &rows[r][c]
			if cell.Value != "" && cell.Value == head.Value {
				head.Span++
				cell.Visible = false
				continue
			}
			heads[c] = r
		}
	}
	return out
}
