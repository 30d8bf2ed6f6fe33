package report

// Report is the raw row grid supplied by a data source: one header row and
// one row per measurement. Rows are kept as found so that structural
// problems surface during grid validation.
type Report struct {
	Header []string
	Rows   [][]string
}

// Source defines the interface for report backends
type Source interface {
	// Load reads the report
	Load() (*Report, error)

	// Path returns the location the report is read from
	Path() string
}
