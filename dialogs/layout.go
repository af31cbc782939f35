package dialogs

import "github.com/charmbracelet/lipgloss"

var (
	overlayBG = lipgloss.Color("236")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(overlayBG).
			Padding(1, 2).
			Width(60)

	hintStyle = lipgloss.NewStyle().Faint(true)
)

// Overlay centres the dialog on a width x height screen filled with the overlay colour.
func Overlay(d Dialog, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		d.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(overlayBG),
	)
}
