package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func filterValues() [][]string {
	return [][]string{
		{"r0", "10.0.0.1", "tcp", "send", "iperf3", "-"},
		{"r1", "10.0.0.2", "udp", "send", "iperf3", "-"},
		{"r2", "10.0.0.1", "udp", "recv", "iperf3", "-"},
		{"r3", "10.0.0.3", "tcp", "recv", "fping", "-"},
		{"r4", "10.0.0.2", "udp", "recv", "fping", "-"},
	}
}

func TestFilterStablePartition(t *testing.T) {
	g := Merge(New(filterValues()))

	filtered, err := Filter(g, 1, ColTransport)
	if err != nil {
		t.Fatalf("Filter error: %v", err)
	}
	if diff := cmp.Diff([]string{"r1", "r2", "r4", "r0", "r3"}, firstColumn(filtered)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if filtered.Len() != g.Len() {
		t.Fatalf("row count changed: %d -> %d", g.Len(), filtered.Len())
	}
	assertMergeConsistent(t, filtered)
	if filtered.Rows()[0][ColTransport].Span != 3 {
		t.Fatalf("udp span = %d, want 3", filtered.Rows()[0][ColTransport].Span)
	}
}

func TestFilterChainsAsNestedPartitions(t *testing.T) {
	g := Merge(New(filterValues()))

	first, err := Filter(g, 2, ColTransport)
	if err != nil {
		t.Fatalf("Filter error: %v", err)
	}
	// first: r1 r2 r4 | r0 r3. Click the "recv" of r2 (now row 1).
	second, err := Filter(first, 1, ColDirection)
	if err != nil {
		t.Fatalf("Filter error: %v", err)
	}
	if diff := cmp.Diff([]string{"r2", "r4", "r3", "r1", "r0"}, firstColumn(second)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	assertMergeConsistent(t, second)
}

func TestFilterOnHiddenCellUsesItsOwnValue(t *testing.T) {
	g := Merge(New(filterValues()))
	filtered, err := Filter(g, 2, ColTransport)
	if err != nil {
		t.Fatalf("Filter error: %v", err)
	}
	// Row 2 (r2) is absorbed into r1's udp span; its value still drives the
	// partition.
	if got := firstColumn(filtered)[0]; got != "r1" {
		t.Fatalf("first row = %s, want r1", got)
	}
}

func TestFilterErrors(t *testing.T) {
	g := New(filterValues())

	if _, err := Filter(g, 7, ColIP); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("row out of range error = %v", err)
	}
	if _, err := Filter(g, 0, 9); !errors.Is(err, ErrNoColumn) {
		t.Fatalf("column out of range error = %v", err)
	}

	ragged := New([][]string{
		{"a", "1", "2", "3", "4", "5"},
		{"b", "1", "2", "3", "4"},
	})
	var serr *StructuralError
	if _, err := Filter(ragged, 0, ColIP); !errors.As(err, &serr) {
		t.Fatalf("ragged error = %v, want StructuralError", err)
	}
}

func TestColumnOf(t *testing.T) {
	type td struct{ id int }
	a, b, c := &td{1}, &td{2}, &td{3}
	col, err := ColumnOf([]*td{a, b, c}, c)
	if err != nil || col != 2 {
		t.Fatalf("ColumnOf = %d, %v", col, err)
	}
	if _, err := ColumnOf([]*td{a, b}, c); !errors.Is(err, ErrNoColumn) {
		t.Fatalf("ColumnOf missing target error = %v", err)
	}
}

func TestColumnAt(t *testing.T) {
	bounds := []Bounds{{0, 4}, {6, 10}, {12, 20}}
	tests := []struct {
		x       int
		want    Column
		wantErr bool
	}{
		{x: 0, want: 0},
		{x: 3, want: 0},
		{x: 6, want: 1},
		{x: 19, want: 2},
		{x: 5, wantErr: true},
		{x: 20, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ColumnAt(bounds, tt.x)
		if tt.wantErr {
			if !errors.Is(err, ErrNoColumn) {
				t.Fatalf("ColumnAt(%d) error = %v, want ErrNoColumn", tt.x, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ColumnAt(%d) = %d, %v, want %d", tt.x, got, err, tt.want)
		}
	}
}
