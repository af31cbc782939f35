package main

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-tablegraph/tablegraph"
)

const ellipsis = "…"

type tableRow struct {
	cols          []string
	height        int
	id            uint64
	originalIndex int // position in the source, 1-based; not unique across axes
}

func newTableRow(cols []string, originalIndex int) tableRow {
	r := tableRow{cols: cols, height: 1, originalIndex: originalIndex}
	r.id = r.ComputeID()
	return r
}

func (r tableRow) ComputeID() uint64 {
	h := fnv.New64a()
	for _, col := range r.cols {
		norm := strings.ToLower(strings.TrimSpace(col))
		h.Write([]byte(norm))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func (r *tableRow) Join(sep string) string {
	return strings.Join(r.cols, sep)
}

// String is the tab separated form used for filtering and the clipboard.
func (r *tableRow) String() string {
	return r.Join("\t")
}

// fitCell shapes text for a cell with inner width w according to the wrapping mode.
func fitCell(text string, w int, mode tablegraph.Wrapping) string {
	if w <= 0 {
		return ""
	}
	switch mode {
	case tablegraph.WrappingWrap:
		return wordwrap.String(text, w)
	case tablegraph.WrappingSingleLine:
		line := strings.ReplaceAll(text, "\n", " ")
		return ansi.Truncate(line, w, "")
	default:
		line := strings.ReplaceAll(text, "\n", " ")
		return truncate.StringWithTail(line, uint(w), ellipsis)
	}
}

func (r *tableRow) Render(style lipgloss.Style, colsMeta []ColumnMeta, mode tablegraph.Wrapping) string {
	rendered := make([]string, 0, len(colsMeta))
	inset := style.GetHorizontalPadding()

	for _, meta := range colsMeta {
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		text := ""
		if meta.Index < len(r.cols) {
			text = r.cols[meta.Index]
		}
		text = fitCell(text, meta.Width-inset, mode)
		cell := style.Width(meta.Width)
		if mode != tablegraph.WrappingWrap {
			cell = cell.MaxHeight(1)
		}
		rendered = append(rendered, cell.Render(text))
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	r.height = max(1, lipgloss.Height(joined))
	return joined
}
