// Package ifql holds the query editor widgets: the function picker dropdown
// and the time machine that assembles picked functions into a query.
package ifql

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-tablegraph/logging"
)

// FuncSelectedMsg is sent when a function is picked from the open list.
type FuncSelectedMsg struct{ Name string }

type FuncsKeymap struct {
	Open   key.Binding
	Toggle key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var DefaultFuncsKeymap = FuncsKeymap{
	Open: key.NewBinding(
		key.WithKeys("+", "a", "enter"),
		key.WithHelp("+/a", "add function"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "toggle function list"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close list"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "pick function"),
	),
}

var (
	buttonStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ff9f1c"))
	dropdownStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	funcStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#c0c0c0"))
	funcSelectedStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#e0e0e0")).Background(lipgloss.Color("#3a3a3a"))
	emptyStyle        = lipgloss.NewStyle().Padding(0, 1).Faint(true)
)

// FuncsButton is a dropdown listing query functions, filtered by a substring
// typed into its input. It starts closed with an empty filter.
type FuncsButton struct {
	funcs  []string
	isOpen bool
	input  textinput.Model
	cursor int
	keys   FuncsKeymap
}

func NewFuncsButton(funcs []string) FuncsButton {
	ti := textinput.New()
	ti.Placeholder = "Filter functions..."
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 24

	return FuncsButton{
		funcs: append([]string(nil), funcs...),
		input: ti,
		keys:  DefaultFuncsKeymap,
	}
}

func (b FuncsButton) Init() tea.Cmd { return nil }

func (b FuncsButton) IsOpen() bool { return b.isOpen }

// Funcs returns the full candidate list.
func (b FuncsButton) Funcs() []string {
	return append([]string(nil), b.funcs...)
}

// FilterText is only meaningful while the list is open.
func (b FuncsButton) FilterText() string {
	if !b.isOpen {
		return ""
	}
	return b.input.Value()
}

// VisibleFuncs returns the functions whose names contain the filter text,
// in their original order. It is nil while the list is closed.
func (b FuncsButton) VisibleFuncs() []string {
	if !b.isOpen {
		return nil
	}
	return filterFuncs(b.funcs, b.input.Value())
}

func filterFuncs(funcs []string, filter string) []string {
	out := make([]string, 0, len(funcs))
	for _, f := range funcs {
		if strings.Contains(f, filter) {
			out = append(out, f)
		}
	}
	return out
}

// Toggle opens a closed list and closes an open one.
func (b *FuncsButton) Toggle() tea.Cmd {
	if b.isOpen {
		b.close()
		return nil
	}
	return b.open()
}

func (b *FuncsButton) open() tea.Cmd {
	logging.Debug("FuncsButton: open")
	b.isOpen = true
	b.cursor = 0
	b.input.SetValue("")
	return b.input.Focus()
}

func (b *FuncsButton) close() {
	logging.Debug("FuncsButton: close")
	b.isOpen = false
	b.cursor = 0
	b.input.SetValue("")
	b.input.Blur()
}

// SetFilter replaces the filter text as if it had been typed.
func (b *FuncsButton) SetFilter(text string) {
	if !b.isOpen {
		return
	}
	b.input.SetValue(text)
	b.clampCursor()
}

func (b *FuncsButton) clampCursor() {
	n := len(b.VisibleFuncs())
	if b.cursor >= n {
		b.cursor = n - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b FuncsButton) Update(msg tea.Msg) (FuncsButton, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if b.isOpen {
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			return b, cmd
		}
		return b, nil
	}

	if key.Matches(km, b.keys.Toggle) {
		return b, b.Toggle()
	}

	if !b.isOpen {
		if key.Matches(km, b.keys.Open) {
			return b, b.open()
		}
		return b, nil
	}

	switch {
	case key.Matches(km, b.keys.Close):
		b.close()
		return b, nil
	case key.Matches(km, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
		return b, nil
	case key.Matches(km, b.keys.Down):
		if b.cursor < len(b.VisibleFuncs())-1 {
			b.cursor++
		}
		return b, nil
	case key.Matches(km, b.keys.Select):
		visible := b.VisibleFuncs()
		if len(visible) == 0 {
			return b, nil
		}
		name := visible[b.cursor]
		logging.Infof("FuncsButton: picked %s", name)
		b.close()
		return b, func() tea.Msg { return FuncSelectedMsg{Name: name} }
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(km)
	b.clampCursor()
	return b, cmd
}

func (b FuncsButton) View() string {
	button := buttonStyle.Render("+ Function")
	if !b.isOpen {
		return button
	}

	lines := []string{b.input.View()}
	visible := b.VisibleFuncs()
	if len(visible) == 0 {
		lines = append(lines, emptyStyle.Render("No matches"))
	}
	for i, f := range visible {
		if i == b.cursor {
			lines = append(lines, funcSelectedStyle.Render(f))
			continue
		}
		lines = append(lines, funcStyle.Render(f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, button, dropdownStyle.Render(strings.Join(lines, "\n")))
}
