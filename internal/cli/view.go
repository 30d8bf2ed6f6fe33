package cli

import (
	"io"
	"path/filepath"

	"github.com/s22625/utilview/internal/logging"
	"github.com/s22625/utilview/internal/viewer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type viewOptions struct {
	Sort    string
	NoMouse bool
}

func newViewCmd() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Interactive report viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Initial sort column (1-5|ip|transport|direction|test|modifier)")
	cmd.Flags().BoolVar(&opts.NoMouse, "no-mouse", false, "Disable click-to-sort and click-to-filter")

	return cmd
}

func runView(opts *viewOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout/stderr; log to a file or nowhere.
	var log *logrus.Logger
	if cfg.Viewer.LogFile != "" {
		l, f, err := logging.NewFile(cfg.Viewer.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer f.Close()
		log = l
	} else {
		log, err = newLogger(io.Discard, cfg)
		if err != nil {
			return err
		}
	}

	src, err := getSource(cfg)
	if err != nil {
		return err
	}
	v, err := loadView(src, log)
	if err != nil {
		return err
	}

	if err := applyOperations(v, sortColumn(opts.Sort, cfg), nil); err != nil {
		return err
	}

	vw := viewer.New(v, viewer.Options{
		Title:  filepath.Base(src.Path()),
		Widths: cfg.Viewer.Widths,
		Mouse:  cfg.MouseEnabled() && !opts.NoMouse,
		Source: src,
	})
	return vw.Run()
}
