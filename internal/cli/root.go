package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/s22625/utilview/internal/config"
	"github.com/s22625/utilview/internal/grid"
	"github.com/s22625/utilview/internal/logging"
	"github.com/s22625/utilview/internal/report"
	"github.com/s22625/utilview/internal/report/file"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK              = 0
	ExitStructuralError = 2
	ExitReportError     = 3
	ExitInternalError   = 10
)

// GlobalOptions holds options shared across all commands
type GlobalOptions struct {
	Report   string
	JSON     bool
	TSV      bool
	Quiet    bool
	LogLevel string
}

var globalOpts = &GlobalOptions{}

// errReport marks failures to locate or read the report.
var errReport = errors.New("report unavailable")

var rootCmd = &cobra.Command{
	Use:   "utilview",
	Short: "Browse network utilization reports",
	Long: `utilview shows a network utilization report as a table in which equal
neighbouring values collapse into spanning cells.

Rows can be sorted by any descriptive column (IP, Transport, Direction, Test,
Modifier) and grouped by clicking a cell value; groupings chain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.Report, "report", "", "Path to report (.html, .tsv, .csv) (or set UTILVIEW_REPORT)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.JSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.TSV, "tsv", false, "Output in TSV format")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Quiet, "quiet", false, "Suppress status messages (report output is still printed)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.LogLevel, "log-level", "", "Log level (error|warn|info|debug)")

	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newExportCmd())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var serr *grid.StructuralError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &serr):
		return ExitStructuralError
	case errors.Is(err, errReport):
		return ExitReportError
	default:
		return ExitInternalError
	}
}

// loadConfig returns the layered config with flags applied on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if globalOpts.Report != "" {
		cfg.Report = config.ExpandPath(globalOpts.Report, "")
	}
	if globalOpts.LogLevel != "" {
		cfg.LogLevel = globalOpts.LogLevel
	}
	return cfg, nil
}

// getSource returns the report source named by the config.
func getSource(cfg *config.Config) (report.Source, error) {
	if cfg.Report == "" {
		return nil, fmt.Errorf("%w: report path not specified (use --report, set UTILVIEW_REPORT, or create .utilview/config.yaml)", errReport)
	}
	src, err := file.New(cfg.Report)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errReport, err)
	}
	return src, nil
}

// loadView reads the report and builds the display-ready grid.
func loadView(src report.Source, log logrus.FieldLogger) (*grid.View, error) {
	rep, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errReport, err)
	}
	log.WithFields(logrus.Fields{"path": src.Path(), "rows": len(rep.Rows)}).Info("loaded report")
	return grid.NewView(rep.Header, rep.Rows, log)
}

// sortColumn returns the --sort flag, falling back to viewer.sort.
func sortColumn(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Viewer.Sort
}

func newLogger(w io.Writer, cfg *config.Config) (*logrus.Logger, error) {
	return logging.New(w, cfg.LogLevel)
}
