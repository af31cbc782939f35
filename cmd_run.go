package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	buf := strings.TrimSpace(m.ui.command.buf)
	switch m.ui.command.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(buf); err == nil {
			return m.jumpToLine(n)
		}
		return m.startNotice("Invalid line number", "warn", noticeDuration)

	case CmdSearch:
		if !m.searchOnce(m.ui.command.buf) && buf != "" {
			return m.startNotice(fmt.Sprintf("No match for %q", buf), "warn", noticeDuration)
		}
		return nil

	case CmdFilter:
		if err := m.setFilterPattern(m.ui.command.buf); err != nil {
			return m.startNotice(fmt.Sprintf("Bad filter: %v", err), "error", noticeDuration)
		}
		return nil
	}
	return nil
}

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil
	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	case tea.KeyRunes:
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
