package viewer

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/s22625/utilview/internal/grid"
	"github.com/s22625/utilview/internal/report"
)

type viewerMode int

const (
	modeTable viewerMode = iota
	modeHelp
)

// Options configures the viewer.
type Options struct {
	Title  string
	Widths []int
	Mouse  bool
	// Source is re-read on reload; nil disables reload.
	Source report.Source
}

// Viewer is the bubbletea model for the report table.
type Viewer struct {
	view   *grid.View
	source report.Source

	title  string
	widths []int
	mouse  bool

	row    int
	col    int
	offset int
	width  int
	height int

	mode    viewerMode
	message string
	isError bool
	trail   []string

	keymap KeyMap
	styles Styles
}

type reloadMsg struct {
	rep *report.Report
	err error
}

// New creates a viewer over v.
func New(v *grid.View, opts Options) *Viewer {
	return &Viewer{
		view:   v,
		source: opts.Source,
		title:  opts.Title,
		widths: columnWidths(tableWidth(v), opts.Widths),
		mouse:  opts.Mouse,
		col:    int(grid.ColIP),
		keymap: DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

func tableWidth(v *grid.View) int {
	n := len(v.Headers())
	if rows := v.Current().Rows(); len(rows) > 0 && len(rows[0]) > n {
		n = len(rows[0])
	}
	return n
}

func columnWidths(n int, overrides []int) []int {
	if n < grid.NumColumns {
		n = grid.NumColumns
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = 10
		if def, ok := grid.GetColumnDef(grid.Column(i)); ok {
			widths[i] = def.Width
		}
		if i < len(overrides) && overrides[i] > 0 {
			widths[i] = max(overrides[i], minColumnW)
		}
	}
	return widths
}

// Run starts the bubbletea program.
func (v *Viewer) Run() error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if v.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(v, opts...).Run()
	return err
}

// Init implements tea.Model.
func (v *Viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ensureCursorVisible()
		return v, nil
	case reloadMsg:
		if msg.err != nil {
			v.fail(msg.err)
			return v, nil
		}
		if err := v.view.Load(msg.rep.Header, msg.rep.Rows); err != nil {
			v.fail(err)
			return v, nil
		}
		v.trail = nil
		v.moveTo(0)
		v.info(fmt.Sprintf("reloaded %d rows", v.view.Current().Len()))
		return v, nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.MouseMsg:
		return v.handleMouse(msg)
	default:
		return v, nil
	}
}

func (v *Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return v, tea.Quit
	}
	if v.mode == modeHelp {
		v.mode = modeTable
		return v, nil
	}
	v.clearMessage()

	if n, ok := parseNumberKey(msg); ok {
		v.sort(grid.Column(n))
		return v, nil
	}

	switch msg.String() {
	case v.keymap.Quit:
		return v, tea.Quit
	case v.keymap.Help:
		v.mode = modeHelp
	case v.keymap.Sort:
		v.sort(grid.Column(v.col))
	case v.keymap.Filter:
		v.filter(v.row, grid.Column(v.col))
	case v.keymap.Reset:
		v.view.Reset()
		v.trail = nil
		v.moveTo(0)
		v.info("reset to report order")
	case v.keymap.Reload:
		if v.source == nil {
			v.fail(errors.New("no report source to reload"))
			return v, nil
		}
		return v, v.reloadCmd()
	case "up", "k":
		v.moveTo(v.row - 1)
	case "down", "j":
		v.moveTo(v.row + 1)
	case "left", "h":
		if v.col > 0 {
			v.col--
		}
	case "right", "l":
		if v.col < v.numColumns()-1 {
			v.col++
		}
	case "pgup":
		v.moveTo(v.row - v.pageSize())
	case "pgdown":
		v.moveTo(v.row + v.pageSize())
	case "home", "g":
		v.moveTo(0)
	case "end", "G":
		v.moveTo(v.view.Current().Len() - 1)
	}
	return v, nil
}

// handleMouse maps a click to the header (sort) or a data cell (filter).
// The column comes from the rendered column bounds; a click between
// columns resolves to no column and is reported.
func (v *Viewer) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.clearMessage()
		v.moveTo(v.row - 1)
		return v, nil
	case tea.MouseButtonWheelDown:
		v.clearMessage()
		v.moveTo(v.row + 1)
		return v, nil
	case tea.MouseButtonLeft:
	default:
		return v, nil
	}
	if msg.Action != tea.MouseActionPress || v.mode != modeTable {
		return v, nil
	}
	v.clearMessage()

	col, err := grid.ColumnAt(v.columnBounds(), msg.X)
	if err != nil {
		v.fail(err)
		return v, nil
	}

	if msg.Y == headerLine {
		v.col = int(col)
		v.sort(col)
		return v, nil
	}
	row := v.offset + msg.Y - firstDataLine
	if msg.Y < firstDataLine || row >= v.offset+v.visibleRows() || row >= v.view.Current().Len() {
		return v, nil
	}
	v.row = row
	v.col = int(col)
	v.filter(row, col)
	return v, nil
}

func (v *Viewer) sort(col grid.Column) {
	if err := v.view.Sort(col); err != nil {
		v.fail(err)
		return
	}
	header := v.headerName(col)
	v.trail = append(v.trail[:0], "sort "+header)
	v.moveTo(0)
	v.info("sorted by " + header)
}

func (v *Viewer) filter(row int, col grid.Column) {
	if !grid.IsSortable(col) {
		v.fail(fmt.Errorf("column %q is not filterable", v.headerName(col)))
		return
	}
	value, err := v.view.Current().Value(row, col)
	if err != nil {
		v.fail(err)
		return
	}
	if err := v.view.Filter(row, col); err != nil {
		v.fail(err)
		return
	}
	v.trail = append(v.trail, fmt.Sprintf("%s=%s", v.headerName(col), value))
	v.moveTo(0)
	v.info(fmt.Sprintf("grouped %s = %q", v.headerName(col), value))
}

func (v *Viewer) reloadCmd() tea.Cmd {
	src := v.source
	return func() tea.Msg {
		rep, err := src.Load()
		return reloadMsg{rep: rep, err: err}
	}
}

func (v *Viewer) info(text string) {
	v.message = text
	v.isError = false
}

// clearMessage drops the last operation's message so the status line
// shows the cursor again.
func (v *Viewer) clearMessage() {
	v.message = ""
	v.isError = false
}

func (v *Viewer) fail(err error) {
	v.message = err.Error()
	v.isError = true
}

func (v *Viewer) headerName(col grid.Column) string {
	headers := v.view.Headers()
	if int(col) < 0 || int(col) >= len(headers) {
		return fmt.Sprintf("#%d", col)
	}
	return strings.TrimSuffix(headers[col], grid.SortIndicator)
}

func (v *Viewer) numColumns() int {
	return len(v.widths)
}

func (v *Viewer) moveTo(row int) {
	n := v.view.Current().Len()
	if row >= n {
		row = n - 1
	}
	if row < 0 {
		row = 0
	}
	v.row = row
	v.ensureCursorVisible()
}

// View implements tea.Model.
func (v *Viewer) View() string {
	if v.mode == modeHelp {
		return v.viewHelp()
	}
	lines := []string{v.renderTitle(), v.renderHeader()}
	lines = append(lines, v.renderRows()...)
	lines = append(lines, "", v.renderStatus(), v.styles.HelpBar.Render(v.keymap.HelpLine()))
	return strings.Join(lines, "\n")
}

func (v *Viewer) viewHelp() string {
	lines := []string{
		v.styles.Title.Render("Help"),
		"",
		"Click a header, press 1-5, or press s on a column to sort by it.",
		"Ties fall through the other descriptive columns in turn.",
		"Click a cell or press enter to move rows with the same value to the top.",
		"Filters chain: each one regroups the current order.",
		"Equal neighbouring values are shown once, spanning their rows.",
		"",
		v.keymap.HelpLine(),
		"",
		v.styles.Muted.Render("Press any key to close this help"),
	}
	return strings.Join(lines, "\n")
}

func (v *Viewer) renderTitle() string {
	title := v.title
	if title == "" {
		title = "utilization"
	}
	return v.styles.Title.Render(title)
}

func (v *Viewer) renderHeader() string {
	headers := v.view.Headers()
	cols := make([]string, v.numColumns())
	for i := range cols {
		text := ""
		if i < len(headers) {
			text = headers[i]
		}
		style := v.styles.Header
		if grid.IsSortable(grid.Column(i)) {
			style = v.styles.Sortable
		}
		cols[i] = pad(text, v.widths[i], style)
	}
	return strings.Join(cols, strings.Repeat(" ", columnGap))
}

func (v *Viewer) renderRows() []string {
	g := v.view.Current()
	if g.Len() == 0 {
		return []string{v.styles.Muted.Render("No rows.")}
	}
	rows := g.Rows()
	end := min(v.offset+v.visibleRows(), len(rows))
	out := make([]string, 0, end-v.offset)
	for r := v.offset; r < end; r++ {
		out = append(out, v.renderRow(r, rows[r]))
	}
	return out
}

func (v *Viewer) renderRow(r int, row grid.Row) string {
	cols := make([]string, v.numColumns())
	for c := range cols {
		var cell grid.Cell
		if c < len(row) {
			cell = row[c]
		}
		text := cell.Value
		style := v.styles.Text
		switch {
		case !cell.Visible:
			text = ""
		case cell.Span > 1:
			style = v.styles.Group
		}
		if r == v.row && c == v.col {
			style = v.styles.Selected
		}
		cols[c] = pad(text, v.widths[c], style)
	}
	return strings.Join(cols, strings.Repeat(" ", columnGap))
}

func (v *Viewer) renderStatus() string {
	if v.message != "" {
		if v.isError {
			return v.styles.Error.Render(v.message)
		}
		return v.styles.Info.Render(v.message)
	}
	g := v.view.Current()
	parts := []string{fmt.Sprintf("row %d/%d", min(v.row+1, g.Len()), g.Len())}
	if value, err := g.Value(v.row, grid.Column(v.col)); err == nil {
		parts = append(parts, fmt.Sprintf("%s: %s", v.headerName(grid.Column(v.col)), value))
		if head := g.RunHead(v.row, grid.Column(v.col)); head != v.row {
			parts = append(parts, fmt.Sprintf("(grouped with row %d)", head+1))
		}
	}
	if len(v.trail) > 0 {
		parts = append(parts, strings.Join(v.trail, " > "))
	}
	return v.styles.StatusBar.Render(strings.Join(parts, "  "))
}

// columnBounds returns the horizontal extent of each rendered column.
func (v *Viewer) columnBounds() []grid.Bounds {
	bounds := make([]grid.Bounds, v.numColumns())
	x := 0
	for i := range bounds {
		bounds[i] = grid.Bounds{Start: x, End: x + v.widths[i]}
		x += v.widths[i] + columnGap
	}
	return bounds
}

func (v *Viewer) visibleRows() int {
	if v.height <= 0 {
		return v.view.Current().Len()
	}
	return max(v.height-firstDataLine-footerLines, 1)
}

func (v *Viewer) pageSize() int {
	return max(v.visibleRows()-1, 1)
}

func (v *Viewer) ensureCursorVisible() {
	visible := v.visibleRows()
	if v.row < v.offset {
		v.offset = v.row
	}
	if v.row >= v.offset+visible {
		v.offset = v.row - visible + 1
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func pad(s string, width int, style lipgloss.Style) string {
	return style.Width(width).MaxWidth(width).Render(truncate(s, width))
}

func parseNumberKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '5' {
		return 0, false
	}
	return int(r - '0'), true
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
