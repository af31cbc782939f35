package main

import (
	"github.com/andareed/siftly-tablegraph/logging"
	"github.com/andareed/siftly-tablegraph/tablegraph"
)

var timeFieldName = tablegraph.TimeFieldDefault.InternalName

// formatTimeCell renders a raw timestamp cell; values that are not
// timestamps pass through unchanged.
func formatTimeCell(raw string, format tablegraph.TimeFormat) string {
	ts, ok := tablegraph.ParseTimestamp(raw)
	if !ok {
		return raw
	}
	return tablegraph.FormatTime(ts, format)
}

// rebuildTable derives the displayed table from the source rows and the
// current options: field order and visibility, sort, time format and axis.
func (m *model) rebuildTable() {
	d := &m.data
	d.options.FieldNames = tablegraph.MergeFieldNames(d.options.FieldNames, d.sourceHeader)
	visible := d.options.VisibleFieldNames()

	srcIdx := make(map[string]int, len(d.sourceHeader))
	for i, h := range d.sourceHeader {
		if _, dup := srcIdx[h]; !dup {
			srcIdx[h] = i
		}
	}

	sortCol := -1
	if i, ok := srcIdx[d.options.SortBy.InternalName]; ok {
		sortCol = i
	}
	order := tablegraph.SortedOrder(d.sourceRows, sortCol, d.options.SortBy.Direction)

	names := make([]string, len(visible))
	for i, f := range visible {
		names[i] = f.Name()
	}

	cells := make([][]string, 0, len(order))
	rowNumbers := make([]int, 0, len(order))
	for _, oi := range order {
		src := d.sourceRows[oi]
		out := make([]string, len(visible))
		for j, f := range visible {
			col := srcIdx[f.InternalName]
			if col < len(src) {
				out[j] = src[col]
			}
			if f.InternalName == timeFieldName {
				out[j] = formatTimeCell(out[j], d.options.TimeFormat)
			}
		}
		cells = append(cells, out)
		rowNumbers = append(rowNumbers, oi+1)
	}

	roles := make([]ColumnRole, len(names))
	for i, f := range visible {
		if f.InternalName == timeFieldName {
			roles[i] = RoleTime
		}
	}
	var labelFields []tablegraph.FieldName
	d.labels = nil

	if !d.options.VerticalTimeAxis && len(names) > 0 {
		names, cells = tablegraph.Transpose(names, cells)
		labelFields = visible[1:]
		d.labels = columnValues(cells, 0)
		if d.labels == nil {
			d.labels = []string{}
		}
		roles = make([]ColumnRole, len(names))
		for i := range roles {
			if i == 0 {
				roles[i] = RoleLabels
			} else {
				roles[i] = RoleTime
			}
		}
		rowNumbers = rowNumbers[:0]
		for i := range cells {
			rowNumbers = append(rowNumbers, i+1)
		}
	}

	d.header = measureColumns(names, cells, roles, d.options, labelFields, m.calc)
	markEmptyColumns(d.header, cells)

	d.rows = make([]tableRow, len(cells))
	for i, c := range cells {
		d.rows[i] = newTableRow(c, rowNumbers[i])
	}

	logging.Debugf("rebuildTable: %d columns, %d rows, format=%q vertical=%v sort=%s/%s",
		len(d.header), len(d.rows), d.options.TimeFormat, d.options.VerticalTimeAxis,
		d.options.SortBy.InternalName, d.options.SortBy.Direction)

	m.scrollColumns(0)
	m.applyFilter()
}
