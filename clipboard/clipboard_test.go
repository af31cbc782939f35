package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestCopier_PrefersSystemClipboard(t *testing.T) {
	var got string
	var term bytes.Buffer
	c := Copier{
		System: func(s string) error { got = s; return nil },
		Term:   &term,
		IsTTY:  func() bool { return true },
	}
	if err := c.Copy("row 1"); err != nil {
		t.Fatal(err)
	}
	if got != "row 1" {
		t.Fatalf("system got %q", got)
	}
	if term.Len() != 0 {
		t.Fatalf("unexpected OSC52 output %q", term.String())
	}
}

func TestCopier_FallsBackToOSC52(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TMUX", "")
	var term bytes.Buffer
	c := Copier{
		System: func(string) error { return errors.New("no xclip") },
		Term:   &term,
		IsTTY:  func() bool { return true },
	}
	if err := c.Copy("hello"); err != nil {
		t.Fatal(err)
	}
	want := base64.StdEncoding.EncodeToString([]byte("hello"))
	if !strings.Contains(term.String(), "]52;c;"+want) {
		t.Fatalf("OSC52 sequence = %q", term.String())
	}
}

func TestCopier_Unavailable(t *testing.T) {
	t.Setenv("TERM", "dumb")
	c := Copier{
		System: func(string) error { return errors.New("no xclip") },
		Term:   &bytes.Buffer{},
		IsTTY:  func() bool { return true },
	}
	if err := c.Copy("x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}

	t.Setenv("TERM", "xterm")
	c.IsTTY = func() bool { return false }
	if err := c.Copy("x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("non-tty err = %v, want ErrUnavailable", err)
	}
}
