package dialogs

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Help shows key bindings in columns; enter or esc closes it.
type Help struct {
	visible bool
	groups  [][]key.Binding
	model   help.Model
}

func NewHelpDialog(groups ...[]key.Binding) *Help {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "    "
	return &Help{visible: true, groups: groups, model: h}
}

func (d *Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}
	body := d.model.FullHelpView(d.groups)
	return boxStyle.Width(0).Render(body + "\n\n" + hintStyle.Render("enter/esc to return"))
}

func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
func (d *Help) Focus() tea.Cmd  { return nil }
func (d *Help) Blur()           {}
func (d *Help) IsVisible() bool { return d.visible }
