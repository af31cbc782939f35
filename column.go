package main

import (
	"math"
	"strings"

	"github.com/andareed/siftly-tablegraph/tablegraph"
)

type ColumnRole int

const (
	RoleNormal ColumnRole = iota
	RoleTime
	RoleLabels // field names when the time axis runs across
)

// naturalWidthCap stops one long value from claiming the whole row as its minimum.
const naturalWidthCap = 48

type ColumnMeta struct {
	Name     string
	Index    int
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RoleTime, RoleLabels:
		return 0
	default:
		return 1.0
	}
}

func cellWidth(w float64) int {
	return int(math.Ceil(w))
}

// widestCell measures every text, since the longest string by rune count is
// not the widest once double-width runes are involved.
func widestCell(calc tablegraph.Calculator, texts []string) int {
	w := 0
	for _, t := range texts {
		w = max(w, cellWidth(calc.Measurer.Measure(t)+calc.Padding))
	}
	return w
}

func columnValues(rows [][]string, col int) []string {
	if len(rows) == 0 {
		return nil
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if col < len(r) {
			out = append(out, r[col])
		}
	}
	return out
}

// measureColumns sizes every column from its content. Time columns are never
// narrower than the widest date the format can produce; the labels column is
// sized from the field names it lists.
func measureColumns(names []string, rows [][]string, roles []ColumnRole, opts tablegraph.TableOptions, labelFields []tablegraph.FieldName, calc tablegraph.Calculator) []ColumnMeta {
	timeWidth := cellWidth(calc.TimeColumnWidth(opts.TimeFormat))
	cols := make([]ColumnMeta, len(names))

	for i, name := range names {
		values := columnValues(rows, i)
		w := max(widestCell(calc, values), widestCell(calc, []string{name}))

		switch roles[i] {
		case RoleTime:
			w = max(w, timeWidth)
		case RoleLabels:
			if lw, ok := calc.LabelsColumnWidth(values, labelFields); ok {
				w = max(w, cellWidth(lw))
			}
		}

		cols[i] = ColumnMeta{
			Name:     name,
			Index:    i,
			Role:     roles[i],
			Visible:  true,
			MinWidth: min(w, naturalWidthCap),
			Weight:   defaultWeightForRole(roles[i]),
		}
	}
	return cols
}

// markEmptyColumns hides columns that have no value in any row. Time and
// label columns always stay.
func markEmptyColumns(cols []ColumnMeta, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	for i := range cols {
		if cols[i].Role != RoleNormal {
			continue
		}
		hasData := false
		for _, row := range rows {
			if cols[i].Index < len(row) && strings.TrimSpace(row[cols[i].Index]) != "" {
				hasData = true
				break
			}
		}
		if !hasData {
			cols[i].Visible = false
			cols[i].Width = 0
			cols[i].Weight = 0
		}
	}
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	// 1. Sum min widths & weights for visible columns
	minSum := 0
	weightSum := 0.0

	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: each visible column keeps its MinWidth, clamped to the row
		for i := range cols {
			if !cols[i].Visible {
				cols[i].Width = 0
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum

	// 2. Distribute remaining space by weight
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}

		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}

// scrollableColumns counts the visible columns that horizontal scrolling moves.
func (m *model) scrollableColumns() int {
	n := 0
	for i, c := range m.data.header {
		if i == 0 && m.data.options.FixFirstColumn {
			continue
		}
		if c.Visible {
			n++
		}
	}
	return n
}

// displayColumns returns the columns on screen after horizontal scrolling,
// laid out to width. The first column stays when it is pinned.
func (m *model) displayColumns(width int) []ColumnMeta {
	header := m.data.header
	cols := make([]ColumnMeta, 0, len(header))
	start := 0
	if m.data.options.FixFirstColumn && len(header) > 0 {
		cols = append(cols, header[0])
		start = 1
	}
	skipped := 0
	for _, c := range header[start:] {
		if !c.Visible {
			continue
		}
		if skipped < m.ui.colOffset {
			skipped++
			continue
		}
		cols = append(cols, c)
	}
	return layoutColumns(cols, width)
}

func (m *model) scrollColumns(delta int) {
	limit := max(0, m.scrollableColumns()-1)
	m.ui.colOffset = min(max(0, m.ui.colOffset+delta), limit)
}
