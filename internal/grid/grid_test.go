package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStartsUnmerged(t *testing.T) {
	g := New(sampleValues())
	for i, row := range g.Rows() {
		if len(row) != NumColumns {
			t.Fatalf("row %d has %d cells", i, len(row))
		}
		for j, cell := range row {
			if cell.Span != 1 || !cell.Visible {
				t.Fatalf("cell (%d,%d) = %+v, want span 1 visible", i, j, cell)
			}
		}
	}
	if diff := cmp.Diff(sampleValues(), g.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	if err := New(nil).Validate(); err != nil {
		t.Fatalf("empty grid: %v", err)
	}
	if err := New(sampleValues()).Validate(); err != nil {
		t.Fatalf("sample grid: %v", err)
	}

	g := New([][]string{
		{"a", "1", "2", "3", "4", "5"},
		{"b", "1", "2", "3", "4", "5"},
		{"c", "1", "2", "3", "4", "5", "6"},
	})
	err := g.Validate()
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("Validate error = %v, want StructuralError", err)
	}
	if serr.Row != 2 || serr.Expected != 6 || serr.Actual != 7 {
		t.Fatalf("StructuralError = %+v", serr)
	}
	if got, want := err.Error(), "inhomogeneous cell count: 7 vs 6 (row 2)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestClearedAndReplace(t *testing.T) {
	merged := Merge(New(sampleValues()))
	cleared := merged.Cleared()
	for i, row := range cleared.Rows() {
		for j, cell := range row {
			if cell.Span != 1 || !cell.Visible {
				t.Fatalf("cleared cell (%d,%d) = %+v", i, j, cell)
			}
		}
	}
	if merged.Rows()[0][ColIP].Span != 3 {
		t.Fatal("Cleared mutated its source")
	}

	cleared.Replace(cleared.Rows()[:1])
	if cleared.Len() != 1 || merged.Len() != len(sampleValues()) {
		t.Fatalf("Replace leaked into source: cleared %d, merged %d", cleared.Len(), merged.Len())
	}
}

func TestRunHead(t *testing.T) {
	g := Merge(New(sampleValues()))
	tests := []struct {
		row  int
		col  Column
		want int
	}{
		{row: 2, col: ColIP, want: 0},
		{row: 4, col: ColIP, want: 3},
		{row: 4, col: ColValue, want: 3},
		{row: 1, col: ColDirection, want: 1},
	}
	for _, tt := range tests {
		if got := g.RunHead(tt.row, tt.col); got != tt.want {
			t.Fatalf("RunHead(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRelabelHeaders(t *testing.T) {
	got := RelabelHeaders([]string{"bw", "a", "b"})
	want := []string{"bw", "IP →", "Transport →"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RelabelHeaders mismatch (-want +got):\n%s", diff)
	}
	for _, col := range SortableColumns() {
		def, ok := GetColumnDef(col)
		if !ok || !def.Sortable {
			t.Fatalf("column %d not registered as sortable", col)
		}
	}
	if def, _ := GetColumnDef(ColValue); def.Sortable {
		t.Fatal("value column registered as sortable")
	}
}
