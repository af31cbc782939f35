package main

import (
	"regexp"

	"github.com/andareed/siftly-tablegraph/logging"
)

func (m *model) setFilterPattern(pattern string) error {
	logging.Infof("Setting Pattern to: %s", pattern)
	if pattern == "" {
		m.data.filterRegex = nil
	} else {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return err
		}
		m.data.filterRegex = re
	}
	m.applyFilter()
	return nil
}

func (m *model) includeRow(row tableRow) bool {
	if m.data.filterRegex == nil {
		return true
	}
	return m.data.filterRegex.MatchString(row.String())
}

// applyFilter recomputes filteredIndices and keeps the cursor in range.
func (m *model) applyFilter() {
	m.data.filteredIndices = m.data.filteredIndices[:0]
	for i, row := range m.data.rows {
		if m.includeRow(row) {
			m.data.filteredIndices = append(m.data.filteredIndices, i)
		}
	}

	switch n := len(m.data.filteredIndices); {
	case n == 0:
		m.cursor = -1
	case m.cursor < 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
	logging.Debugf("applyFilter: %d of %d rows", len(m.data.filteredIndices), len(m.data.rows))
}

func (m *model) checkViewPortHasData() bool {
	return len(m.data.filteredIndices) > 0 && m.cursor >= 0
}
