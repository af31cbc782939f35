package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-tablegraph/dialogs"
	"github.com/andareed/siftly-tablegraph/logging"
)

// gutterWidth is the row number column plus one space.
func (m *model) gutterWidth() int {
	return len(fmt.Sprintf("%d", max(len(m.data.rows), 1))) + 1
}

func (m *model) rowWidth() int {
	return max(0, m.viewport.Width-m.gutterWidth())
}

func (m *model) headerView() string {
	var cells []string
	for _, col := range m.displayColumns(m.rowWidth()) {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		name := fitCell(col.Name, col.Width-cellStyle.GetHorizontalPadding(), m.data.options.Wrapping)
		cells = append(cells, cellStyle.Width(col.Width).MaxHeight(1).Render(name))
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return headerStyle.Render(strings.Repeat(" ", m.gutterWidth()) + headerRow)
}

// footerView renders the 2-line footer.
// width is the rendered table width.
func (m *model) footerView(width int) string {
	st := footerState{
		Mode:       CmdNone,
		FileName:   m.InitialPath,
		Format:     m.data.options.TimeFormat,
		Wrapping:   m.data.options.Wrapping,
		Sort:       m.sortLabel(),
		Transposed: !m.data.options.VerticalTimeAxis,
		Pinned:     m.data.options.FixFirstColumn,
		Row:        m.cursor + 1,
		TotalRows:  len(m.data.filteredIndices),
		Notice:     noticeText(m.ui.noticeMsg, m.ui.noticeType),
		Legend:     m.idleCommandHintsLine(),
	}
	switch m.ui.mode {
	case modeCommand:
		st.Mode = m.ui.command.cmd
		st.ModeInput = m.activeCommandLine()
		st.Legend = m.commandHintsLine()
	case modeQuery:
		st.Mode = CmdQuery
		st.ModeInput = m.timeMachine.Query()
		st.Legend = m.queryHintsLine()
	}
	if m.data.filterRegex != nil {
		st.Filter = m.data.filterRegex.String()
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d page=%d ch=%d hf=%d abv=%d col=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd, m.pageRowSize,
			m.ui.debugCursorHeight, m.ui.debugHeightFree, m.ui.debugDesiredAboveHeight, m.ui.colOffset,
		)
		st.Legend = st.Legend + " |" + debug
	}

	return renderFooter(width, st)
}

func (m *model) timeMachineView() string {
	style := queryBlurStyle
	if m.ui.mode == modeQuery {
		style = queryFocusStyle
	}
	return style.Render(m.timeMachine.View())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.activeDialog, m.terminalWidth, m.terminalHeight)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered, m.timeMachineView(), m.footerView(contentW)}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) renderRowAt(filteredIdx int, cols []ColumnMeta) (string, int, bool) {
	if filteredIdx < 0 || filteredIdx >= len(m.data.filteredIndices) {
		return "", 0, false
	}

	selected := filteredIdx == m.cursor
	rowBgStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		rowBgStyle = rowSelectedStyle
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	rowIdx := m.data.filteredIndices[filteredIdx]
	rowPtr := &m.data.rows[rowIdx]
	row := *rowPtr

	gutterW := m.gutterWidth()
	firstLineMarker := rowBgStyle.Inherit(gutterStyle).Render(fmt.Sprintf("%*d ", gutterW-1, row.originalIndex))
	additionalLineMarker := rowBgStyle.Render(strings.Repeat(" ", gutterW))

	contentRow := row
	if m.ui.searchQuery != "" {
		cells := make([]string, len(row.cols))
		for i, col := range row.cols {
			cells[i] = highlightMatches(col, m.ui.searchQuery)
		}
		contentRow.cols = cells
	}
	content := contentRow.Render(cellStyle, cols, m.data.options.Wrapping)
	rowPtr.height = contentRow.height
	lines := strings.Split(content, "\n")

	for i := range lines {
		left := additionalLineMarker
		line := lines[i]
		if m.ui.searchQuery != "" {
			line = restoreRowStyleAfterReset(line, rowPrefix)
		}
		if i == 0 {
			left = firstLineMarker
		}
		lines[i] = ansi.Truncate(left+rowPrefix+line, m.viewport.Width, "") + rowSuffix
	}

	return strings.Join(lines, "\n"), contentRow.height, true
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	if len(lowerText) != len(text) {
		// case folding changed byte offsets; matching would split runes
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

func (m *model) renderViewport() string {
	if !m.checkViewPortHasData() {
		m.ui.visibleStart, m.ui.visibleEnd = 0, 0
		return "(no rows)"
	}

	cols := m.displayColumns(m.rowWidth())
	renderedRows, startIdx, endIdx := m.computeVisibleRows(m.cursor, m.viewport.Height, cols)
	m.ui.visibleStart = startIdx
	m.ui.visibleEnd = endIdx
	m.pageRowSize = len(renderedRows)
	m.lastVisibleRowCount = len(renderedRows)

	return strings.Join(renderedRows, "\n")
}

// computeVisibleRows fills the viewport around the cursor, aiming to keep
// the cursor row in the middle.
func (m *model) computeVisibleRows(cursor int, viewportHeight int, cols []ColumnMeta) ([]string, int, int) {
	cursorRenderedRow, cursorHeight, ok := m.renderRowAt(cursor, cols)
	if !ok {
		return nil, 0, 0
	}

	heightFree := viewportHeight - cursorHeight
	desiredAboveHeight := max(heightFree/2, 0)
	m.ui.debugCursorHeight = cursorHeight
	m.ui.debugHeightFree = heightFree
	m.ui.debugDesiredAboveHeight = desiredAboveHeight
	upIndex := cursor - 1
	downIndex := cursor + 1

	var above []string
	var below []string

	aboveHeight := 0
	for heightFree > 0 && (upIndex >= 0 || downIndex < len(m.data.filteredIndices)) {
		if upIndex >= 0 && aboveHeight < desiredAboveHeight {
			rendered, height, ok := m.renderRowAt(upIndex, cols)
			if ok && height <= heightFree {
				above = append(above, rendered)
				heightFree -= height
				aboveHeight += height
				upIndex--
				continue
			}
		}
		if downIndex < len(m.data.filteredIndices) {
			rendered, height, ok := m.renderRowAt(downIndex, cols)
			if ok && height <= heightFree {
				below = append(below, rendered)
				heightFree -= height
				downIndex++
				continue
			}
		}
		if upIndex >= 0 {
			rendered, height, ok := m.renderRowAt(upIndex, cols)
			if ok && height <= heightFree {
				above = append(above, rendered)
				heightFree -= height
				aboveHeight += height
				upIndex--
				continue
			}
		}
		break
	}

	renderedRows := make([]string, 0, len(above)+1+len(below))
	for i := len(above) - 1; i >= 0; i-- {
		renderedRows = append(renderedRows, above[i])
	}
	renderedRows = append(renderedRows, cursorRenderedRow)
	renderedRows = append(renderedRows, below...)

	return renderedRows, cursor - len(above), cursor + len(below)
}
