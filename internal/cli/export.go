package cli

import (
	"fmt"
	"os"

	"github.com/s22625/utilview/internal/report"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	Sort    string
	Filters []string
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export OUTPUT",
		Short: "Write the merged report as an HTML table",
		Long: `Write the report as an HTML utilization table with rowspan on merged cells
and the hidden attribute on absorbed cells. --sort and --filter behave as in
'utilview show'. Use - to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort by column (1-5|ip|transport|direction|test|modifier; default viewer.sort)")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "Group by the value at ROW:COLUMN (repeatable)")

	return cmd
}

func runExport(output string, opts *exportOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(os.Stderr, cfg)
	if err != nil {
		return err
	}
	src, err := getSource(cfg)
	if err != nil {
		return err
	}
	v, err := loadView(src, log)
	if err != nil {
		return err
	}
	if err := applyOperations(v, sortColumn(opts.Sort, cfg), opts.Filters); err != nil {
		return err
	}

	if output == "-" {
		return report.WriteHTML(os.Stdout, v.Headers(), v.Current())
	}
	if err := report.ExportHTML(output, v.Headers(), v.Current()); err != nil {
		return err
	}
	if !globalOpts.Quiet {
		fmt.Printf("exported %d rows to %s\n", v.Current().Len(), output)
	}
	return nil
}
