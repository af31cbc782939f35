package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/andareed/siftly-tablegraph/tablegraph"
)

// footerState is everything the two footer lines show: the table settings
// and position on top, the latest notice and key hints below.
type footerState struct {
	Mode      Command
	ModeInput string
	FileName  string

	Format     tablegraph.TimeFormat
	Wrapping   tablegraph.Wrapping
	Sort       string
	Filter     string
	Transposed bool
	Pinned     bool

	Row       int
	TotalRows int

	Notice string
	Legend string
}

func renderFooter(width int, st footerState) string {
	if width <= 0 {
		return ""
	}
	return renderSettingsBar(width, st) + "\n" + renderNoticeBar(width, st)
}

// settingsSegments lists the table settings, most useful first. Segments
// that do not fit are dropped from the end.
func (st footerState) settingsSegments() []string {
	segs := []string{
		"fmt " + string(st.Format),
		"wrap " + string(st.Wrapping),
	}
	if st.Sort != "" {
		segs = append(segs, "sort "+st.Sort)
	}
	filter := strings.TrimSpace(st.Filter)
	if filter == "" {
		filter = "none"
	}
	segs = append(segs, "filter "+filter)
	if st.Transposed {
		segs = append(segs, "axis across")
	}
	if st.Pinned {
		segs = append(segs, "pinned")
	}
	return segs
}

func (st footerState) sourceLabel() string {
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	label := " ▸ " + name
	if in := strings.TrimSpace(st.ModeInput); in != "" {
		label += " ▸ " + in
	}
	return label + " "
}

func renderSettingsBar(width int, st footerState) string {
	position := footerDimStyle.Render(" Rows " + humanize.Comma(int64(max(st.Row, 0))) + "/" + humanize.Comma(int64(max(st.TotalRows, 0))) + " ")
	room := max(0, width-lipgloss.Width(position))

	mode := footerModeStyle.Render(commandLabel(st.Mode))
	source := footerFileStyle.Render(ansi.Truncate(st.sourceLabel(), max(0, room-lipgloss.Width(mode)), "…"))
	left := mode + source
	used := lipgloss.Width(left)

	for _, s := range st.settingsSegments() {
		seg := footerDimStyle.Render("· " + s + " ")
		w := lipgloss.Width(seg)
		if used+w > room {
			break
		}
		left += seg
		used += w
	}

	if used > room {
		left = ansi.Truncate(left, room, "")
		used = room
	}
	return left + footerBarStyle.Render(strings.Repeat(" ", room-used)) + position
}

func renderNoticeBar(width int, st footerState) string {
	legend := ansi.Truncate(st.Legend, width, "")
	legendW := lipgloss.Width(legend)

	msgW := width - legendW
	msg := ansi.Truncate(st.Notice, msgW, "…")
	pad := strings.Repeat(" ", max(0, msgW-lipgloss.Width(msg)))
	return footerNoticeStyle.Render(msg+pad) + footerLegendStyle.Render(legend)
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdFilter:
		return "FILTER"
	case CmdQuery:
		return "QUERY"
	default:
		return "TABLE"
	}
}
