package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/andareed/siftly-tablegraph/ifql"
	"github.com/andareed/siftly-tablegraph/tablegraph"
)

func testModel(t *testing.T) *model {
	t.Helper()
	header := []string{"time", "host", "usage"}
	rows := [][]string{
		{"2024-03-01T10:00:00Z", "web-1", "12.5"},
		{"2024-03-01T09:00:00Z", "db-1", "3"},
		{"2024-03-01T11:00:00Z", "web-2", "7"},
	}
	return newModel(header, rows, tablegraph.DefaultTableOptions(), []string{"from", "range", "sum"}, 2)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func specialKeyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func press(m *model, keys ...tea.KeyMsg) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		_, last = m.Update(k)
	}
	return last
}

func typeKeys(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, keyMsg(string(r)))
	}
	return out
}

func displayed(m *model) [][]string {
	out := make([][]string, 0, len(m.data.filteredIndices))
	for _, idx := range m.data.filteredIndices {
		out = append(out, m.data.rows[idx].cols)
	}
	return out
}

func currentRowNumber(m *model) int {
	return m.data.rows[m.data.filteredIndices[m.cursor]].originalIndex
}

func TestNewModel_SortsAndFormatsTimes(t *testing.T) {
	m := testModel(t)

	want := [][]string{
		{"03/01/2024 09:00:00.00", "db-1", "3"},
		{"03/01/2024 10:00:00.00", "web-1", "12.5"},
		{"03/01/2024 11:00:00.00", "web-2", "7"},
	}
	if diff := cmp.Diff(want, displayed(m)); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
	if m.data.rows[0].originalIndex != 2 {
		t.Fatalf("first row number = %d, want 2", m.data.rows[0].originalIndex)
	}

	names := []string{}
	for _, f := range m.data.options.FieldNames {
		names = append(names, f.InternalName)
	}
	if diff := cmp.Diff([]string{"time", "host", "usage"}, names); diff != "" {
		t.Fatalf("field names (-want +got):\n%s", diff)
	}
}

func TestNewModel_ColumnWidths(t *testing.T) {
	m := testModel(t)

	got := []int{}
	for _, c := range m.data.header {
		got = append(got, c.MinWidth)
	}
	// time: worst case of the default format (22 cells) + 2; others: longest value + 2
	if diff := cmp.Diff([]int{24, 7, 7}, got); diff != "" {
		t.Fatalf("min widths (-want +got):\n%s", diff)
	}
	if m.data.header[0].Role != RoleTime {
		t.Fatalf("first column role = %v, want RoleTime", m.data.header[0].Role)
	}
}

func TestNewModel_HiddenFieldAndDisplayName(t *testing.T) {
	opts := tablegraph.DefaultTableOptions()
	opts.FieldNames = []tablegraph.FieldName{
		tablegraph.TimeFieldDefault,
		{InternalName: "host", Visible: false},
		{InternalName: "usage", DisplayName: "CPU", Visible: true},
	}
	m := newModel([]string{"time", "host", "usage"}, [][]string{{"2024-03-01T09:00:00Z", "db-1", "3"}}, opts, nil, 2)

	if len(m.data.header) != 2 || m.data.header[1].Name != "CPU" {
		t.Fatalf("header = %+v", m.data.header)
	}
	if diff := cmp.Diff([][]string{{"03/01/2024 09:00:00.00", "3"}}, displayed(m)); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
}

func TestToggleAxis_TransposesWithLabelsColumn(t *testing.T) {
	m := testModel(t)
	press(m, keyMsg("t"))

	if m.data.options.VerticalTimeAxis {
		t.Fatal("axis should be horizontal")
	}
	if diff := cmp.Diff([]string{"host", "usage"}, m.data.labels); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
	want := [][]string{
		{"host", "db-1", "web-1", "web-2"},
		{"usage", "3", "12.5", "7"},
	}
	if diff := cmp.Diff(want, displayed(m)); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
	if m.data.header[0].Role != RoleLabels || m.data.header[0].MinWidth != 7 {
		t.Fatalf("labels column = %+v", m.data.header[0])
	}
	if m.data.header[1].Name != "03/01/2024 09:00:00.00" || m.data.header[1].MinWidth != 24 {
		t.Fatalf("time column = %+v", m.data.header[1])
	}

	press(m, keyMsg("t"))
	if !m.data.options.VerticalTimeAxis || m.data.labels != nil {
		t.Fatal("second toggle should restore the vertical axis")
	}
}

func TestKeys_FormatWrappingPinSort(t *testing.T) {
	m := testModel(t)

	press(m, keyMsg("o"))
	if m.data.options.TimeFormat != "MM/DD/YYYY HH:mm" {
		t.Fatalf("format = %q", m.data.options.TimeFormat)
	}
	if got := m.data.rows[0].cols[0]; got != "03/01/2024 09:00" {
		t.Fatalf("time cell = %q", got)
	}

	press(m, keyMsg("w"))
	if m.data.options.Wrapping != tablegraph.WrappingWrap {
		t.Fatalf("wrapping = %q", m.data.options.Wrapping)
	}

	press(m, keyMsg("p"))
	if m.data.options.FixFirstColumn {
		t.Fatal("p should unpin the first column")
	}

	press(m, keyMsg("r"))
	if m.data.options.SortBy.Direction != tablegraph.Descending || currentRowNumber(m) != 3 {
		t.Fatalf("reverse sort: dir=%s first=%d", m.data.options.SortBy.Direction, currentRowNumber(m))
	}

	press(m, keyMsg("S"))
	if m.data.options.SortBy.InternalName != "host" {
		t.Fatalf("sort field = %q, want host", m.data.options.SortBy.InternalName)
	}
	if got := m.data.rows[0].cols[1]; got != "web-2" {
		t.Fatalf("descending by host, first = %q", got)
	}
}

func TestCommandMode_FilterJumpSearch(t *testing.T) {
	m := testModel(t)

	press(m, keyMsg("f"))
	if m.ui.mode != modeCommand || m.ui.command.cmd != CmdFilter {
		t.Fatalf("mode=%v cmd=%v", m.ui.mode, m.ui.command.cmd)
	}
	press(m, typeKeys("web")...)
	press(m, specialKeyMsg(tea.KeyEnter))
	if m.ui.mode != modeView || len(m.data.filteredIndices) != 2 {
		t.Fatalf("after filter: mode=%v rows=%d", m.ui.mode, len(m.data.filteredIndices))
	}

	press(m, keyMsg(":"), keyMsg("3"), specialKeyMsg(tea.KeyEnter))
	if currentRowNumber(m) != 3 {
		t.Fatalf("jump: row %d, want 3", currentRowNumber(m))
	}

	// row 2 is filtered out
	cmd := press(m, keyMsg(":"), keyMsg("2"), specialKeyMsg(tea.KeyEnter))
	if cmd == nil || !strings.Contains(m.ui.noticeMsg, "not in current filter") {
		t.Fatalf("notice = %q", m.ui.noticeMsg)
	}

	press(m, keyMsg("F"))
	if len(m.data.filteredIndices) != 3 {
		t.Fatalf("clear filter: %d rows", len(m.data.filteredIndices))
	}

	m.cursor = 0
	press(m, keyMsg("/"))
	press(m, typeKeys("WEB-2")...)
	press(m, specialKeyMsg(tea.KeyEnter))
	if currentRowNumber(m) != 3 {
		t.Fatalf("search: row %d, want 3", currentRowNumber(m))
	}
}

func TestCommandMode_BadRegexAndEscape(t *testing.T) {
	m := testModel(t)
	press(m, keyMsg("f"), keyMsg("("), specialKeyMsg(tea.KeyEnter))
	if m.ui.noticeType != "error" || len(m.data.filteredIndices) != 3 {
		t.Fatalf("notice=%q rows=%d", m.ui.noticeMsg, len(m.data.filteredIndices))
	}

	press(m, keyMsg("f"), keyMsg("x"), specialKeyMsg(tea.KeyEsc))
	if m.ui.mode != modeView || m.data.filterRegex != nil {
		t.Fatal("esc should cancel without filtering")
	}
}

func TestFilter_NoMatchesClearsCursor(t *testing.T) {
	m := testModel(t)
	if err := m.setFilterPattern("nothing-matches"); err != nil {
		t.Fatal(err)
	}
	if m.cursor != -1 || m.checkViewPortHasData() {
		t.Fatalf("cursor = %d", m.cursor)
	}
	if cmd := m.copyCurrentRow(); cmd != nil {
		t.Fatal("copy with no rows should do nothing")
	}
	if err := m.setFilterPattern(""); err != nil {
		t.Fatal(err)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor after clearing = %d", m.cursor)
	}
}

func TestTimeMachine_FocusAndPick(t *testing.T) {
	m := testModel(t)

	press(m, specialKeyMsg(tea.KeyTab))
	if m.ui.mode != modeQuery {
		t.Fatal("tab should focus the time machine")
	}

	press(m, keyMsg("+"))
	if !m.timeMachine.Button().IsOpen() {
		t.Fatal("+ should open the function list")
	}
	// "r" would reverse the sort in table mode
	press(m, typeKeys("ran")...)
	cmd := press(m, specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter should pick a function")
	}
	m.Update(cmd())

	if diff := cmp.Diff([]ifql.Node{{Name: "range"}}, m.timeMachine.Nodes()); diff != "" {
		t.Fatalf("nodes (-want +got):\n%s", diff)
	}
	if m.data.options.SortBy.Direction != tablegraph.Ascending {
		t.Fatal("keys in query mode must not reach the table")
	}

	press(m, specialKeyMsg(tea.KeyEsc))
	if m.ui.mode != modeView {
		t.Fatal("esc with the list closed should return to the table")
	}
}

func TestSuggestions_ReplaceFuncs(t *testing.T) {
	m := testModel(t)
	m.Update(suggestionsMsg{funcs: []string{"join", "map"}})
	if diff := cmp.Diff([]string{"join", "map"}, m.timeMachine.Button().Funcs()); diff != "" {
		t.Fatalf("funcs (-want +got):\n%s", diff)
	}
	if m.ui.noticeType != "success" {
		t.Fatalf("notice type = %q", m.ui.noticeType)
	}
}

func TestNotice_ClearsOnlyLatest(t *testing.T) {
	m := testModel(t)
	m.startNotice("first", "info", noticeDuration)
	m.startNotice("second", "info", noticeDuration)

	m.Update(clearNoticeMsg{id: 1})
	if m.ui.noticeMsg != "second" {
		t.Fatalf("stale timer cleared notice: %q", m.ui.noticeMsg)
	}
	m.Update(clearNoticeMsg{id: 2})
	if m.ui.noticeMsg != "" {
		t.Fatalf("notice = %q, want cleared", m.ui.noticeMsg)
	}
}

func TestView_RendersHeaderRowsAndQuery(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, want := range []string{"time", "host", "usage", "db-1", "web-2", "Time Machine", "TABLE", "fmt MM/DD/YYYY HH:mm:ss.SS"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.lastVisibleRowCount != 3 {
		t.Fatalf("visible rows = %d, want 3", m.lastVisibleRowCount)
	}

	press(m, keyMsg("?"))
	if m.activeDialog == nil || !strings.Contains(m.View(), "next time format") {
		t.Fatal("? should show the help dialog")
	}
	press(m, specialKeyMsg(tea.KeyEsc))
	if m.activeDialog != nil {
		t.Fatal("esc should close the help dialog")
	}
}

func TestScrollColumns_PinnedFirstColumn(t *testing.T) {
	m := testModel(t)
	press(m, keyMsg("l"))
	cols := m.displayColumns(200)
	if len(cols) != 2 || cols[0].Name != "time" || cols[1].Name != "usage" {
		t.Fatalf("pinned scroll = %+v", cols)
	}

	press(m, keyMsg("l"), keyMsg("l"))
	if m.ui.colOffset != 1 {
		t.Fatalf("offset = %d, want clamp at 1", m.ui.colOffset)
	}

	press(m, keyMsg("p"))
	cols = m.displayColumns(200)
	if len(cols) != 2 || cols[0].Name != "host" {
		t.Fatalf("unpinned scroll = %+v", cols)
	}
}

func TestKeys_CustomFormatPointsAtTokenDocs(t *testing.T) {
	m := testModel(t)
	for m.data.options.TimeFormat != tablegraph.TimeFormatCustom {
		press(m, keyMsg("o"))
	}
	if !strings.Contains(m.ui.noticeMsg, tablegraph.TimeFormatTooltipLink) {
		t.Fatalf("notice = %q", m.ui.noticeMsg)
	}
	if got := m.data.rows[0].cols[0]; got != "2024-03-01T09:00:00Z" {
		t.Fatalf("custom format cell = %q", got)
	}
}
