package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/andareed/siftly-tablegraph/tablegraph"
)

func TestFitCell(t *testing.T) {
	cases := []struct {
		name string
		text string
		w    int
		mode tablegraph.Wrapping
		want string
	}{
		{"truncate short", "abc", 5, tablegraph.WrappingTruncate, "abc"},
		{"truncate long", "abcdefgh", 5, tablegraph.WrappingTruncate, "abcd…"},
		{"single line cut", "abcdefgh", 5, tablegraph.WrappingSingleLine, "abcde"},
		{"single line newline", "ab\ncd", 10, tablegraph.WrappingSingleLine, "ab cd"},
		{"wrap words", "alpha beta gamma", 10, tablegraph.WrappingWrap, "alpha beta\ngamma"},
		{"zero width", "abc", 0, tablegraph.WrappingTruncate, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := fitCell(c.text, c.w, c.mode); got != c.want {
				t.Fatalf("fitCell(%q, %d, %s) = %q, want %q", c.text, c.w, c.mode, got, c.want)
			}
		})
	}
}

func TestTableRow_RenderHeight(t *testing.T) {
	cols := []ColumnMeta{{Index: 0, Visible: true, Width: 12}, {Index: 1, Visible: false, Width: 8}}
	style := lipgloss.NewStyle().Padding(0, 1)

	r := newTableRow([]string{"alpha beta gamma", "hidden"}, 1)
	out := r.Render(style, cols, tablegraph.WrappingTruncate)
	if r.height != 1 || strings.Contains(out, "hidden") {
		t.Fatalf("truncate: height=%d out=%q", r.height, out)
	}
	if w := ansi.StringWidth(out); w != 12 {
		t.Fatalf("truncate width = %d, want 12", w)
	}

	out = r.Render(style, cols, tablegraph.WrappingWrap)
	if r.height != 2 {
		t.Fatalf("wrap: height=%d out=%q", r.height, out)
	}
}

func TestTableRow_IDStable(t *testing.T) {
	a := newTableRow([]string{"Web-1 ", "3"}, 1)
	b := newTableRow([]string{"web-1", "3"}, 7)
	if a.id != b.id {
		t.Fatal("ids should ignore case, surrounding space and position")
	}
	if a.String() != "Web-1 \t3" {
		t.Fatalf("String() = %q", a.String())
	}
}
