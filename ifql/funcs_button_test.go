package ifql

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func setup(funcs ...string) FuncsButton {
	if funcs == nil {
		funcs = []string{"f1", "f2"}
	}
	return NewFuncsButton(funcs)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func specialKeyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(b FuncsButton, s string) FuncsButton {
	for _, r := range s {
		b, _ = b.Update(keyMsg(string(r)))
	}
	return b
}

func TestFuncsButton_ClosedByDefault(t *testing.T) {
	b := setup()

	if b.IsOpen() {
		t.Fatal("should start closed")
	}
	if b.VisibleFuncs() != nil {
		t.Fatalf("closed list should be nil, got %v", b.VisibleFuncs())
	}
	if strings.Contains(b.View(), "f1") {
		t.Fatal("closed view should not list functions")
	}
}

func TestFuncsButton_OpenShowsAllFuncs(t *testing.T) {
	b := setup()
	b, _ = b.Update(keyMsg("+"))

	if !b.IsOpen() {
		t.Fatal("expected open")
	}
	if diff := cmp.Diff([]string{"f1", "f2"}, b.VisibleFuncs()); diff != "" {
		t.Fatalf("visible (-want +got):\n%s", diff)
	}
	view := b.View()
	if !strings.Contains(view, "f1") || !strings.Contains(view, "f2") {
		t.Fatalf("open view should list functions:\n%s", view)
	}
}

func TestFuncsButton_FilterIsLiteralSubstring(t *testing.T) {
	b := setup()
	b, _ = b.Update(keyMsg("+"))
	b = typeText(b, "2")

	if diff := cmp.Diff([]string{"f2"}, b.VisibleFuncs()); diff != "" {
		t.Fatalf("visible (-want +got):\n%s", diff)
	}
	if b.FilterText() != "2" {
		t.Fatalf("filter = %q", b.FilterText())
	}

	c := setup("Mean", "mean", "median")
	c, _ = c.Update(keyMsg("a"))
	c = typeText(c, "me")
	if diff := cmp.Diff([]string{"mean", "median"}, c.VisibleFuncs()); diff != "" {
		t.Fatalf("case sensitive filter (-want +got):\n%s", diff)
	}
}

func TestFuncsButton_EscClosesAndClearsFilter(t *testing.T) {
	b := setup()
	b, _ = b.Update(keyMsg("+"))
	b = typeText(b, "2")

	b, _ = b.Update(specialKeyMsg(tea.KeyEsc))
	if b.IsOpen() {
		t.Fatal("esc should close the list")
	}
	if b.VisibleFuncs() != nil {
		t.Fatal("list should be hidden")
	}

	b, _ = b.Update(keyMsg("+"))
	if b.FilterText() != "" {
		t.Fatalf("filter should reset on close, got %q", b.FilterText())
	}
	if diff := cmp.Diff([]string{"f1", "f2"}, b.VisibleFuncs()); diff != "" {
		t.Fatalf("visible after reopen (-want +got):\n%s", diff)
	}
}

func TestFuncsButton_ToggleClosesAndClears(t *testing.T) {
	b := setup()
	b.Toggle()
	b.SetFilter("1")
	if diff := cmp.Diff([]string{"f1"}, b.VisibleFuncs()); diff != "" {
		t.Fatalf("visible (-want +got):\n%s", diff)
	}

	b, _ = b.Update(specialKeyMsg(tea.KeyCtrlF))
	if b.IsOpen() {
		t.Fatal("ctrl+f should close an open list")
	}
	b.Toggle()
	if b.FilterText() != "" {
		t.Fatalf("filter should be empty after toggle, got %q", b.FilterText())
	}
}

func TestFuncsButton_SelectEmitsAndCloses(t *testing.T) {
	b := setup("from", "range", "sum")
	b, _ = b.Update(keyMsg("+"))
	b, _ = b.Update(specialKeyMsg(tea.KeyDown))

	b, cmd := b.Update(specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(FuncSelectedMsg)
	if !ok || msg.Name != "range" {
		t.Fatalf("got %#v", cmd())
	}
	if b.IsOpen() {
		t.Fatal("selecting should close the list")
	}
}

func TestFuncsButton_SelectWithNoMatchesIsNoop(t *testing.T) {
	b := setup()
	b, _ = b.Update(keyMsg("+"))
	b = typeText(b, "zzz")

	if len(b.VisibleFuncs()) != 0 {
		t.Fatalf("expected no matches, got %v", b.VisibleFuncs())
	}
	b, cmd := b.Update(specialKeyMsg(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("enter with no matches should not emit")
	}
	if !b.IsOpen() {
		t.Fatal("list should stay open")
	}
	if !strings.Contains(b.View(), "No matches") {
		t.Fatal("expected empty hint")
	}
}

func TestFuncsButton_CursorClampsWhenFilterNarrows(t *testing.T) {
	b := setup("f1", "f2", "f3")
	b, _ = b.Update(keyMsg("+"))
	b, _ = b.Update(specialKeyMsg(tea.KeyDown))
	b, _ = b.Update(specialKeyMsg(tea.KeyDown))
	b = typeText(b, "1")

	b, cmd := b.Update(specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg := cmd().(FuncSelectedMsg); msg.Name != "f1" {
		t.Fatalf("picked %q", msg.Name)
	}
	_ = b
}
