package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
	CmdFilter
	CmdQuery
)

type CommandInput struct {
	cmd Command
	buf string
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdFilter:
		return "filter: "
	case CmdJump:
		return "line: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine() string {
	return "enter: apply   esc: cancel"
}

func (m *model) idleCommandHintsLine() string {
	return "(? help · f filter · / search · : jump · o format · w wrap · t axis · tab query)"
}

func (m *model) queryHintsLine() string {
	return "(+/a open funcs · type to filter · enter pick · x remove last · tab back)"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	return m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}
