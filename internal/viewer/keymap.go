package viewer

import "fmt"

// KeyMap defines the keyboard shortcuts displayed in the footer.
type KeyMap struct {
	Sort   string
	Filter string
	Reset  string
	Reload string
	Quit   string
	Help   string
}

// DefaultKeyMap returns the default shortcut mapping.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Sort:   "s",
		Filter: "enter",
		Reset:  "r",
		Reload: "R",
		Quit:   "q",
		Help:   "?",
	}
}

// HelpLine renders the footer help text.
func (k KeyMap) HelpLine() string {
	return fmt.Sprintf("[%s/1-5] sort  [%s/click] filter  [%s] reset  [%s] reload  [%s] quit  [%s] help",
		k.Sort, k.Filter, k.Reset, k.Reload, k.Quit, k.Help)
}
