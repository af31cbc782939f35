package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface the modal dialogs (path prompts, help) implement.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
