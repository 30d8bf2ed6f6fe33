package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/s22625/utilview/internal/grid"
	"github.com/spf13/cobra"
)

type showOptions struct {
	Sort    string
	Filters []string
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged report",
		Long: `Print the report with equal neighbouring values merged.

--sort reorders by a descriptive column (1-5 or a header name). Each --filter
ROW:COLUMN then moves the rows sharing the value of that cell to the top, as
clicking the cell would. ROW is 1-based and refers to the order produced by
the previous step, so filters chain.`,
		Example: `  utilview show --report util.html --sort transport
  utilview show --sort ip --filter 1:direction --filter 3:test`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort by column (1-5|ip|transport|direction|test|modifier; default viewer.sort)")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "Group by the value at ROW:COLUMN (repeatable)")

	return cmd
}

func runShow(opts *showOptions) error {
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

	if globalOpts.JSON {
		return outputJSON(v.Headers(), v.Current())
	}
	if globalOpts.TSV {
		return outputTSV(v.Current())
	}
	return outputTable(v.Headers(), v.Current())
}

// applyOperations sorts then applies each filter in order.
func applyOperations(v *grid.View, sortBy string, filters []string) error {
	if sortBy != "" {
		col, err := grid.ParseColumn(sortBy)
		if err != nil {
			return err
		}
		if err := v.Sort(col); err != nil {
			return err
		}
	}
	for _, f := range filters {
		row, col, err := parseCellRef(f)
		if err != nil {
			return err
		}
		if err := v.Filter(row, col); err != nil {
			return fmt.Errorf("filter %s: %w", f, err)
		}
	}
	return nil
}

// parseCellRef parses ROW:COLUMN with a 1-based row.
func parseCellRef(ref string) (int, grid.Column, error) {
	rowStr, colStr, ok := strings.Cut(ref, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid cell %q (want ROW:COLUMN)", ref)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid row in %q (want a number from 1)", ref)
	}
	col, err := grid.ParseColumn(colStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column in %q: %w", ref, err)
	}
	return row - 1, col, nil
}

func outputJSON(headers []string, g *grid.Grid) error {
	output := struct {
		OK      bool       `json:"ok"`
		Headers []string   `json:"headers"`
		Rows    []grid.Row `json:"rows"`
	}{
		OK:      true,
		Headers: headers,
		Rows:    g.Rows(),
	}
	if output.Rows == nil {
		output.Rows = []grid.Row{}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputTSV prints raw values in the current order, one row per line.
func outputTSV(g *grid.Grid) error {
	for _, row := range g.Values() {
		fmt.Println(strings.Join(row, "\t"))
	}
	return nil
}

func outputTable(headers []string, g *grid.Grid) error {
	if g.Len() == 0 {
		if !globalOpts.Quiet {
			fmt.Println("No rows found")
		}
		return nil
	}

	rows := make([][]string, g.Len())
	spans := g.Rows()
	for i, row := range spans {
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell.Visible {
				cells[j] = cell.Value
			}
		}
		rows[i] = cells
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	groupStyle := cellStyle.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(spans) && col < len(spans[row]) && spans[row][col].Span > 1 {
				return groupStyle
			}
			return cellStyle
		})

	fmt.Println(t.Render())
	return nil
}
