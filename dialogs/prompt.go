package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tablegraph/logging"
)

// PromptKind says what the confirmed path will be used for.
type PromptKind int

const (
	PromptSave    PromptKind = iota // JSON snapshot
	PromptExport                    // CSV of the visible rows
	PromptOptions                   // YAML table options
)

func (k PromptKind) String() string {
	switch k {
	case PromptSave:
		return "save"
	case PromptExport:
		return "export"
	case PromptOptions:
		return "options"
	default:
		return "unknown"
	}
}

func (k PromptKind) label() string {
	switch k {
	case PromptExport:
		return "Export as: "
	case PromptOptions:
		return "Write options to: "
	default:
		return "Save as: "
	}
}

// --- Messages ---------------------------------------------------------------

type (
	PathConfirmedMsg struct {
		Kind PromptKind
		Path string
	}
	PathCanceledMsg struct{ Kind PromptKind }
)

// PathPrompt asks for a file name. A bare name is placed in lastDir.
type PathPrompt struct {
	kind    PromptKind
	input   textinput.Model
	visible bool
	lastDir string
}

func NewPathPrompt(kind PromptKind, defaultName, lastDir string) *PathPrompt {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = kind.label()
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &PathPrompt{kind: kind, input: ti, visible: true, lastDir: lastDir}
}

func (d *PathPrompt) Kind() PromptKind { return d.kind }

func (d *PathPrompt) Init() tea.Cmd { return d.input.Focus() }

func (d *PathPrompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolve()
			if path == "" {
				return d, nil
			}
			logging.Debugf("PathPrompt(%s): confirmed %s", d.kind, path)
			kind := d.kind
			return d, func() tea.Msg { return PathConfirmedMsg{Kind: kind, Path: path} }
		case "esc":
			logging.Debugf("PathPrompt(%s): canceled", d.kind)
			kind := d.kind
			return d, func() tea.Msg { return PathCanceledMsg{Kind: kind} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *PathPrompt) resolve() string {
	val := d.input.Value()
	if val == "" {
		// fall back to placeholder if user left it blank
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d *PathPrompt) View() string {
	if !d.visible {
		return ""
	}
	help := hintStyle.Render(fmt.Sprintf("enter to %s • esc to cancel", d.kind))
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *PathPrompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *PathPrompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *PathPrompt) Focus() tea.Cmd  { return d.input.Focus() }
func (d *PathPrompt) Blur()           { d.input.Blur() }
func (d *PathPrompt) IsVisible() bool { return d.visible }
