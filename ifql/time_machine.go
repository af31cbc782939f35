package ifql

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultFuncs is used when no backend provides suggestions.
var DefaultFuncs = []string{
	"from",
	"range",
	"filter",
	"window",
	"sum",
	"count",
	"mean",
	"last",
	"sample",
	"percentile",
	"derivative",
	"difference",
	"covariance",
	"stateTracking",
}

// Node is one function call in the query pipeline.
type Node struct {
	Name string
}

func (n Node) String() string { return n.Name + "()" }

var (
	machineStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	queryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0e0"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

var removeLastNode = key.NewBinding(
	key.WithKeys("x"),
	key.WithHelp("x", "remove last function"),
)

// TimeMachine is the query builder pane. Functions picked in its FuncsButton
// are appended to the pipeline.
type TimeMachine struct {
	button FuncsButton
	nodes  []Node
	width  int
}

func NewTimeMachine(funcs []string, nodes []Node) TimeMachine {
	return TimeMachine{
		button: NewFuncsButton(funcs),
		nodes:  append([]Node(nil), nodes...),
	}
}

func (t TimeMachine) Init() tea.Cmd { return nil }

func (t TimeMachine) Nodes() []Node {
	return append([]Node(nil), t.nodes...)
}

func (t TimeMachine) Button() FuncsButton { return t.button }

// SetFuncs replaces the candidate list, closing the dropdown.
func (t *TimeMachine) SetFuncs(funcs []string) {
	t.button = NewFuncsButton(funcs)
}

func (t *TimeMachine) SetWidth(w int) { t.width = w }

// Query renders the pipeline, e.g. "from() |> range() |> sum()".
func (t TimeMachine) Query() string {
	parts := make([]string, len(t.nodes))
	for i, n := range t.nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " |> ")
}

func (t TimeMachine) Update(msg tea.Msg) (TimeMachine, tea.Cmd) {
	switch msg := msg.(type) {
	case FuncSelectedMsg:
		t.nodes = append(t.nodes, Node{Name: msg.Name})
		return t, nil
	case tea.KeyMsg:
		if !t.button.IsOpen() && key.Matches(msg, removeLastNode) {
			if len(t.nodes) > 0 {
				t.nodes = t.nodes[:len(t.nodes)-1]
			}
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.button, cmd = t.button.Update(msg)
	return t, cmd
}

func (t TimeMachine) View() string {
	query := t.Query()
	if query == "" {
		query = hintStyle.Render("(empty query)")
	} else {
		query = queryStyle.Render(query)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Time Machine"),
		query,
		t.button.View(),
	)

	style := machineStyle
	if t.width > 2 {
		style = style.Width(t.width - 2)
	}
	return style.Render(body)
}
