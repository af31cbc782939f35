package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tablegraph/clipboard"
	"github.com/andareed/siftly-tablegraph/logging"
)

type copiedMsg struct {
	row int
	err error
}

// copyCurrentRow puts the selected row, tab separated, on the clipboard.
func (m *model) copyCurrentRow() tea.Cmd {
	if !m.checkViewPortHasData() {
		return nil
	}
	row := m.data.rows[m.data.filteredIndices[m.cursor]]
	text := row.String()
	number := row.originalIndex
	logging.Debugf("copyCurrentRow: row %d (%d bytes)", number, len(text))
	return func() tea.Msg {
		return copiedMsg{row: number, err: clipboard.Copy(text)}
	}
}

func (m *model) handleCopied(msg copiedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Warnf("copy row %d: %v", msg.row, msg.err)
		return m.startNotice(fmt.Sprintf("Copy failed: %v", msg.err), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Row %d copied", msg.row), "success", noticeDuration)
}
