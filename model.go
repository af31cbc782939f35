package main

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-tablegraph/ajax"
	"github.com/andareed/siftly-tablegraph/dialogs"
	"github.com/andareed/siftly-tablegraph/ifql"
	"github.com/andareed/siftly-tablegraph/logging"
	"github.com/andareed/siftly-tablegraph/tablegraph"
	"github.com/andareed/siftly-tablegraph/textmetrics"
)

type model struct {
	data        dataState
	ui          uiState
	viewport    viewport.Model
	timeMachine ifql.TimeMachine
	calc        tablegraph.Calculator

	links          *ajax.LinksCache
	requestTimeout time.Duration

	activeDialog dialogs.Dialog

	ready               bool
	cursor              int // index into filteredIndices
	lastVisibleRowCount int
	pageRowSize         int
	terminalWidth       int
	terminalHeight      int

	InitialPath string
}

// newModel builds a table over the given header and rows. cellPadding is
// the number of terminal cells added around every measured column.
func newModel(header []string, rows [][]string, opts tablegraph.TableOptions, funcs []string, cellPadding int) *model {
	m := &model{
		data: dataState{
			sourceHeader: header,
			sourceRows:   rows,
			options:      opts,
		},
		timeMachine: ifql.NewTimeMachine(funcs, nil),
		calc:        tablegraph.Calculator{Measurer: textmetrics.Cells{}, Padding: float64(cellPadding)},
	}
	m.rebuildTable()
	return m
}

// withServer makes Init fetch the query function list from the backend.
func (m *model) withServer(cache *ajax.LinksCache, timeout time.Duration) *model {
	m.links = cache
	m.requestTimeout = timeout
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-tablegraph: initialised with %d rows", len(m.data.rows))
	if m.links == nil {
		return nil
	}
	return fetchSuggestions(m.links, m.requestTimeout)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(0, 0)
			m.ready = true
		}
	case tea.KeyMsg:
		_, cmd = m.updateKey(msg)
	case clearNoticeMsg:
		m.clearNotice(msg)
	case suggestionsMsg:
		cmd = m.handleSuggestions(msg)
	case copiedMsg:
		cmd = m.handleCopied(msg)
	case ifql.FuncSelectedMsg:
		m.timeMachine, cmd = m.timeMachine.Update(msg)
	case dialogs.PathConfirmedMsg:
		m.activeDialog = nil
		cmd = m.writeFile(msg.Kind, msg.Path)
	case dialogs.PathCanceledMsg:
		m.activeDialog = nil
	}

	m.layout()
	return m, cmd
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		if !m.activeDialog.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeQuery:
		return m.handleQueryKey(msg)
	}
	return m.handleViewModeKey(msg)
}

// handleQueryKey routes keys to the time machine. tab, or esc while the
// dropdown is closed, hands focus back to the table.
func (m *model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.FocusQuery) || (msg.Type == tea.KeyEsc && !m.timeMachine.Button().IsOpen()) {
		m.ui.mode = modeView
		return m, nil
	}
	var cmd tea.Cmd
	m.timeMachine, cmd = m.timeMachine.Update(msg)
	return m, cmd
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Filter):
		m.enterCommandMode(CmdFilter)
	case key.Matches(msg, Keys.ClearFilter):
		_ = m.setFilterPattern("")
		return m, m.startNotice("Filter cleared", "info", noticeDuration)
	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, Keys.Jump):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, Keys.NextFormat):
		return m, m.cycleTimeFormat()
	case key.Matches(msg, Keys.NextWrapping):
		return m, m.cycleWrapping()
	case key.Matches(msg, Keys.TogglePin):
		return m, m.togglePin()
	case key.Matches(msg, Keys.ToggleAxis):
		return m, m.toggleAxis()
	case key.Matches(msg, Keys.NextSortField):
		return m, m.sortByNextField()
	case key.Matches(msg, Keys.ReverseSort):
		return m, m.reverseSort()
	case key.Matches(msg, Keys.CopyRow):
		return m, m.copyCurrentRow()
	case key.Matches(msg, Keys.FocusQuery):
		m.ui.mode = modeQuery
	case key.Matches(msg, Keys.RowDown):
		if m.cursor < len(m.data.filteredIndices)-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.PageDown):
		m.pageDown()
	case key.Matches(msg, Keys.PageUp):
		m.pageUp()
	case key.Matches(msg, Keys.Top):
		m.jumpToStart()
	case key.Matches(msg, Keys.Bottom):
		m.jumpToEnd()
	case key.Matches(msg, Keys.ScrollLeft):
		m.scrollColumns(-1)
	case key.Matches(msg, Keys.ScrollRight):
		m.scrollColumns(1)
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend()...)
	case key.Matches(msg, Keys.SaveToFile):
		return m, m.openPathPrompt(dialogs.PromptSave)
	case key.Matches(msg, Keys.ExportToFile):
		return m, m.openPathPrompt(dialogs.PromptExport)
	case key.Matches(msg, Keys.WriteOptions):
		return m, m.openPathPrompt(dialogs.PromptOptions)
	}
	return m, nil
}

func (m *model) openPathPrompt(kind dialogs.PromptKind) tea.Cmd {
	ext := map[dialogs.PromptKind]string{
		dialogs.PromptSave:    ".json",
		dialogs.PromptExport:  ".csv",
		dialogs.PromptOptions: ".yaml",
	}[kind]
	lastDir := ""
	if m.InitialPath != "" {
		lastDir = filepath.Dir(m.InitialPath)
	}
	d := dialogs.NewPathPrompt(kind, defaultSaveName(m.InitialPath, ext), lastDir)
	m.activeDialog = d
	return d.Init()
}

// layout sizes the viewport around the header, time machine and footer,
// then re-renders the visible rows.
func (m *model) layout() {
	if !m.ready {
		return
	}
	w := max(0, m.terminalWidth-appstyle.GetHorizontalFrameSize())
	m.timeMachine.SetWidth(w - queryBlurStyle.GetHorizontalFrameSize())

	const headerH, footerH = 1, 2
	chrome := appstyle.GetVerticalFrameSize() + headerH + footerH + tableStyle.GetVerticalFrameSize()
	queryH := lipgloss.Height(m.timeMachineView())

	m.viewport.Width = max(1, w-tableStyle.GetHorizontalFrameSize())
	m.viewport.Height = max(1, m.terminalHeight-chrome-queryH)
	m.viewport.SetContent(m.renderViewport())
}
