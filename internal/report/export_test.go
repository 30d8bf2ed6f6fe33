package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/s22625/utilview/internal/grid"
	"github.com/s22625/utilview/internal/report"
	"github.com/s22625/utilview/internal/report/file"
)

func sampleGrid() *grid.Grid {
	return grid.Merge(grid.New([][]string{
		{"941", "10.0.1.2", "tcp", "send", "iperf3", "-"},
		{"936", "10.0.1.2", "tcp", "recv", "iperf3", "-"},
		{"512", "10.0.1.3", "udp", "send", "a<b", ""},
	}))
}

var headers = grid.RelabelHeaders([]string{"Mbit/s", "h", "p", "d", "t", "m"})

func TestWriteHTMLAnnotations(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteHTML(&buf, headers, sampleGrid()); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<table class="utilization">`,
		`<th class="desc">IP →</th>`,
		`<td class="desc" rowspan="2">10.0.1.2</td>`,
		`<td class="desc" hidden="">10.0.1.2</td>`,
		`<td class="desc" rowspan="2">tcp</td>`,
		`<td class="desc">a&lt;b</td>`,
		`<td>512</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportHTMLReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	g := sampleGrid()
	if err := report.ExportHTML(path, headers, g); err != nil {
		t.Fatalf("ExportHTML error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat export: %v", err)
	}

	src, err := file.New(path)
	if err != nil {
		t.Fatalf("file.New error: %v", err)
	}
	rep, err := src.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(headers, rep.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.Values(), rep.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
