package grid

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// View owns the currently displayed grid. Every operation computes a full
// replacement; on failure the current grid is left untouched. A View is
// not safe for concurrent use.
type View struct {
	headers []string
	initial *Grid
	current *Grid
	log     logrus.FieldLogger
}

// NewView validates and merges the load-time grid. A nil logger discards
// output.
func NewView(headers []string, values [][]string, log logrus.FieldLogger) (*View, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	g := New(values)
	if err := g.Validate(); err != nil {
		warn(log, "load", err)
		return nil, err
	}
	merged := Merge(g)
	return &View{
		headers: RelabelHeaders(headers),
		initial: merged,
		current: merged,
		log:     log,
	}, nil
}

// Current returns the display-ready grid. Handles obtained before a later
// operation are stale and must not be reused.
func (v *View) Current() *Grid {
	return v.current
}

// Headers returns the relabelled header row.
func (v *View) Headers() []string {
	return v.headers
}

// Sort reorders by col and replaces the current grid.
func (v *View) Sort(col Column) error {
	next, err := Sort(v.current, col)
	if err != nil {
		warn(v.log, "sort", err)
		return err
	}
	v.log.WithField("column", int(col)).Debug("sorted grid")
	v.current = next
	return nil
}

// Filter groups rows matching the value at (row, col) first and replaces
// the current grid. Filters chain on the current ordering.
func (v *View) Filter(row int, col Column) error {
	next, err := Filter(v.current, row, col)
	if err != nil {
		warn(v.log, "filter", err)
		return err
	}
	v.log.WithFields(logrus.Fields{"row": row, "column": int(col)}).Debug("filtered grid")
	v.current = next
	return nil
}

// Reset restores the load-time ordering.
func (v *View) Reset() {
	v.current = v.initial
}

// Load replaces the headers and data with a freshly supplied report,
// typically a re-read of the report source. An empty header row keeps the
// current headers.
func (v *View) Load(headers []string, values [][]string) error {
	g := New(values)
	if err := g.Validate(); err != nil {
		warn(v.log, "load", err)
		return err
	}
	merged := Merge(g)
	if len(headers) > 0 {
		v.headers = RelabelHeaders(headers)
	}
	v.initial = merged
	v.current = merged
	return nil
}

func warn(log logrus.FieldLogger, op string, err error) {
	entry := log.WithField("op", op)
	var serr *StructuralError
	if errors.As(err, &serr) {
		entry = entry.WithFields(logrus.Fields{
			"row":      serr.Row,
			"expected": serr.Expected,
			"actual":   serr.Actual,
		})
	}
	entry.Warn(err)
}
