package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tablegraph/logging"
)

func (m *model) jumpToStart() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = len(m.data.filteredIndices) - 1
}

func (m *model) pageDown() {
	if !m.checkViewPortHasData() {
		return
	}
	step := max(1, m.lastVisibleRowCount)
	m.cursor = min(m.cursor+step, len(m.data.filteredIndices)-1)
}

func (m *model) pageUp() {
	if !m.checkViewPortHasData() {
		return
	}
	step := max(1, m.lastVisibleRowCount)
	m.cursor = max(m.cursor-step, 0)
}

// jumpToLine moves to the row displayed with number lineNo.
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	if !m.checkViewPortHasData() {
		return nil
	}
	if lineNo <= 0 || lineNo > len(m.data.rows) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), "warn", noticeDuration)
	}
	for i, idx := range m.data.filteredIndices {
		if m.data.rows[idx].originalIndex == lineNo {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("Line %d not in current filter", lineNo), "warn", noticeDuration)
}
