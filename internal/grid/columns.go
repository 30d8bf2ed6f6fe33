package grid

// SortIndicator is appended to the header of every sortable column.
const SortIndicator = " →"

type ColumnDef struct {
	ID       Column
	Header   string
	Width    int
	Sortable bool
}

var columnRegistry = map[Column]ColumnDef{
	ColValue:     {ID: ColValue, Header: "", Width: 12},
	ColIP:        {ID: ColIP, Header: "IP", Width: 15, Sortable: true},
	ColTransport: {ID: ColTransport, Header: "Transport", Width: 11, Sortable: true},
	ColDirection: {ID: ColDirection, Header: "Direction", Width: 11, Sortable: true},
	ColTest:      {ID: ColTest, Header: "Test", Width: 10, Sortable: true},
	ColModifier:  {ID: ColModifier, Header: "Modifier", Width: 10, Sortable: true},
}

var sortableColumns = []Column{ColIP, ColTransport, ColDirection, ColTest, ColModifier}

func GetColumnDef(col Column) (ColumnDef, bool) {
	def, ok := columnRegistry[col]
	return def, ok
}

// SortableColumns returns the descriptive columns in cascade order.
func SortableColumns() []Column {
	return sortableColumns
}

// SortableHeaders returns the display names of the descriptive columns.
func SortableHeaders() []string {
	names := make([]string, len(sortableColumns))
	for i, col := range sortableColumns {
		names[i] = columnRegistry[col].Header
	}
	return names
}

// RelabelHeaders replaces the descriptive headers with their display names
// and marks them sortable. Column 0 and any extra columns keep the source
// text.
func RelabelHeaders(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	for _, col := range sortableColumns {
		if int(col) >= len(out) {
			break
		}
		out[col] = columnRegistry[col].Header + SortIndicator
	}
	return out
}
