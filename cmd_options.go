package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tablegraph/tablegraph"
)

func (m *model) cycleTimeFormat() tea.Cmd {
	m.data.options.TimeFormat = tablegraph.NextFormatOption(m.data.options.TimeFormat)
	m.rebuildTable()
	if m.data.options.TimeFormat == tablegraph.TimeFormatCustom {
		return m.startNotice("Time format: Custom, set --format (tokens: "+tablegraph.TimeFormatTooltipLink+")", "info", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Time format: %s", m.data.options.TimeFormat), "info", noticeDuration)
}

func (m *model) cycleWrapping() tea.Cmd {
	m.data.options.Wrapping = m.data.options.Wrapping.Next()
	return m.startNotice(fmt.Sprintf("Wrapping: %s", m.data.options.Wrapping), "info", noticeDuration)
}

func (m *model) togglePin() tea.Cmd {
	m.data.options.FixFirstColumn = !m.data.options.FixFirstColumn
	m.scrollColumns(0)
	state := "unpinned"
	if m.data.options.FixFirstColumn {
		state = "pinned"
	}
	return m.startNotice("First column "+state, "info", noticeDuration)
}

func (m *model) toggleAxis() tea.Cmd {
	m.data.options.VerticalTimeAxis = !m.data.options.VerticalTimeAxis
	m.ui.colOffset = 0
	m.cursor = 0
	m.rebuildTable()
	axis := "horizontal"
	if m.data.options.VerticalTimeAxis {
		axis = "vertical"
	}
	return m.startNotice("Time axis "+axis, "info", noticeDuration)
}

// sortByNextField moves the sort to the visible field after the current one.
func (m *model) sortByNextField() tea.Cmd {
	visible := m.data.options.VisibleFieldNames()
	if len(visible) == 0 {
		return nil
	}
	next := visible[0]
	for i, f := range visible {
		if f.InternalName == m.data.options.SortBy.InternalName {
			next = visible[(i+1)%len(visible)]
			break
		}
	}
	m.data.options.SortBy.FieldName = next
	m.rebuildTable()
	return m.startNotice(fmt.Sprintf("Sorted by %s (%s)", next.Name(), m.data.options.SortBy.Direction), "info", noticeDuration)
}

func (m *model) reverseSort() tea.Cmd {
	m.data.options.SortBy.Direction = m.data.options.SortBy.Direction.Reverse()
	m.rebuildTable()
	return m.startNotice(fmt.Sprintf("Sorted by %s (%s)", m.data.options.SortBy.Name(), m.data.options.SortBy.Direction), "info", noticeDuration)
}

func (m *model) sortLabel() string {
	s := m.data.options.SortBy
	if s.InternalName == "" {
		return "None"
	}
	return s.Name() + " " + string(s.Direction)
}
