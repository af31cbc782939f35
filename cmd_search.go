package main

import "strings"

// searchOnce moves the cursor to the next visible row containing query,
// wrapping around. It reports whether a row matched.
func (m *model) searchOnce(query string) bool {
	m.ui.searchQuery = query
	if query == "" || !m.checkViewPortHasData() {
		return false
	}
	q := strings.ToLower(query)
	n := len(m.data.filteredIndices)
	for step := 1; step <= n; step++ {
		i := (m.cursor + step) % n
		row := m.data.rows[m.data.filteredIndices[i]]
		if strings.Contains(strings.ToLower(row.String()), q) {
			m.cursor = i
			return true
		}
	}
	return false
}
