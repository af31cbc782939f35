package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	Filter        key.Binding
	ClearFilter   key.Binding
	Search        key.Binding
	Jump          key.Binding
	NextFormat    key.Binding
	NextWrapping  key.Binding
	TogglePin     key.Binding
	ToggleAxis    key.Binding
	NextSortField key.Binding
	ReverseSort   key.Binding
	CopyRow       key.Binding
	FocusQuery    key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	RowDown       key.Binding
	RowUp         key.Binding
	Top           key.Binding
	Bottom        key.Binding
	ScrollLeft    key.Binding
	ScrollRight   key.Binding
	OpenHelp      key.Binding
	SaveToFile    key.Binding
	ExportToFile  key.Binding
	WriteOptions  key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "regex filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	NextFormat: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "next time format"),
	),
	NextWrapping: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "next wrapping mode"),
	),
	TogglePin: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pin first column"),
	),
	ToggleAxis: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "flip time axis"),
	),
	NextSortField: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "sort by next field"),
	),
	ReverseSort: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reverse sort"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row"),
	),
	FocusQuery: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus time machine"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first row"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last row"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll columns left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll columns right"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save snapshot"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export CSV"),
	),
	WriteOptions: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "write table options"),
	),
}

// Legend groups the bindings for the help dialog columns.
func (k Keymap) Legend() [][]key.Binding {
	return [][]key.Binding{
		{k.RowUp, k.RowDown, k.PageUp, k.PageDown, k.Top, k.Bottom, k.ScrollLeft, k.ScrollRight},
		{k.Filter, k.ClearFilter, k.Search, k.Jump, k.NextSortField, k.ReverseSort, k.CopyRow},
		{k.NextFormat, k.NextWrapping, k.TogglePin, k.ToggleAxis, k.FocusQuery},
		{k.SaveToFile, k.ExportToFile, k.WriteOptions, k.OpenHelp, k.Quit},
	}
}
