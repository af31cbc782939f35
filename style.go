package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
	footerBarBGColor       = "#2b2b2b"
	footerNoticeBGColor    = "#000000"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))
	gutterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	queryFocusStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#ff9f1c"))
	queryBlurStyle = lipgloss.NewStyle().Border(lipgloss.HiddenBorder(), false, false, false, true)

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))

	footerBarStyle    = lipgloss.NewStyle().Background(lipgloss.Color(footerBarBGColor)).Foreground(lipgloss.Color("#cfcfcf"))
	footerModeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#ff9f1c")).Foreground(lipgloss.Color("#000000")).Padding(0, 1)
	footerFileStyle   = footerBarStyle.Foreground(lipgloss.Color("#e0e0e0"))
	footerDimStyle    = footerBarStyle.Foreground(lipgloss.Color("#a0a0a0"))
	footerNoticeStyle = lipgloss.NewStyle().Background(lipgloss.Color(footerNoticeBGColor)).Foreground(lipgloss.Color("#9a9a9a"))
	footerLegendStyle = footerNoticeStyle.Foreground(lipgloss.Color("#b0b0b0"))
)
