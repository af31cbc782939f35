package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andareed/siftly-tablegraph/tablegraph"
	"github.com/andareed/siftly-tablegraph/textmetrics"
)

func TestLayoutColumns(t *testing.T) {
	cols := []ColumnMeta{
		{Name: "time", Visible: true, MinWidth: 24, Weight: 0},
		{Name: "host", Visible: true, MinWidth: 7, Weight: 1},
		{Name: "empty", Visible: false, MinWidth: 7, Weight: 1},
		{Name: "usage", Visible: true, MinWidth: 7, Weight: 1},
	}
	got := widths(layoutColumns(cols, 48))
	if diff := cmp.Diff([]int{24, 12, 0, 12}, got); diff != "" {
		t.Fatalf("roomy (-want +got):\n%s", diff)
	}

	got = widths(layoutColumns(cols, 30))
	if diff := cmp.Diff([]int{24, 7, 0, 7}, got); diff != "" {
		t.Fatalf("tight (-want +got):\n%s", diff)
	}
}

func TestMarkEmptyColumns(t *testing.T) {
	cols := []ColumnMeta{
		{Name: "time", Index: 0, Role: RoleTime, Visible: true},
		{Name: "blank", Index: 1, Visible: true, Weight: 1},
		{Name: "host", Index: 2, Visible: true, Weight: 1},
	}
	markEmptyColumns(cols, [][]string{{"", " ", "a"}, {"", "", "b"}})
	if !cols[0].Visible || cols[1].Visible || !cols[2].Visible {
		t.Fatalf("visibility = %v %v %v", cols[0].Visible, cols[1].Visible, cols[2].Visible)
	}
}

func widths(cols []ColumnMeta) []int {
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = c.Width
	}
	return out
}

func TestMeasureColumns_WideRunes(t *testing.T) {
	calc := tablegraph.Calculator{Measurer: textmetrics.Cells{}}
	tests := []struct {
		name   string
		header string
		rows   [][]string
		want   int
	}{
		{"double width beats more runes", "h", [][]string{{"abc"}, {"日本"}}, 4},
		{"more runes still win when wider", "h", [][]string{{"日本語"}, {"abcd"}}, 6},
		{"header wider than values", "hostname", [][]string{{"日本"}}, 8},
		{"wide header", "主机名", [][]string{{"web-1"}}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := measureColumns([]string{tt.header}, tt.rows, []ColumnRole{RoleNormal},
				tablegraph.DefaultTableOptions(), nil, calc)
			if cols[0].MinWidth != tt.want {
				t.Fatalf("MinWidth = %d, want %d", cols[0].MinWidth, tt.want)
			}
		})
	}
}
