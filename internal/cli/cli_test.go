package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	os.Stdout = w
	defer func() {
		os.Stdout = orig
	}()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return string(out)
}

func resetGlobalOpts(t *testing.T) {
	t.Helper()
	orig := *globalOpts
	t.Cleanup(func() {
		*globalOpts = orig
	})
}

const testReport = "Mbit/s\thost\tproto\tdir\ttool\tmod\n" +
	"941\t10.0.1.2\ttcp\tsend\tiperf3\t-\n" +
	"512\t10.0.1.3\tudp\tsend\tiperf3\t-\n" +
	"936\t10.0.1.2\ttcp\trecv\tiperf3\t-\n" +
	"498\t10.0.1.3\tudp\trecv\ttcpbench\t\n"

// setupReport isolates config lookup and points --report at a fresh file.
func setupReport(t *testing.T, content string) string {
	t.Helper()
	resetGlobalOpts(t)

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("UTILVIEW_REPORT", "")
	t.Setenv("UTILVIEW_LOG_LEVEL", "")
	t.Setenv("UTILVIEW_SORT", "")

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})

	path := filepath.Join(dir, "report.tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write report: %v", err)
	}
	globalOpts.Report = path
	globalOpts.LogLevel = "error"
	return path
}
