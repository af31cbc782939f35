package tablegraph

import (
	"sort"
	"strconv"
	"strings"
)

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// Transpose turns a table with time running down the rows into one with time
// running across the columns. The first header cell becomes the header of the
// new first column, which holds the remaining header names.
func Transpose(header []string, rows [][]string) ([]string, [][]string) {
	if len(header) == 0 {
		return nil, nil
	}

	newHeader := make([]string, 0, len(rows)+1)
	newHeader = append(newHeader, header[0])
	for _, r := range rows {
		newHeader = append(newHeader, cellAt(r, 0))
	}

	newRows := make([][]string, 0, len(header)-1)
	for c := 1; c < len(header); c++ {
		out := make([]string, 0, len(rows)+1)
		out = append(out, header[c])
		for _, r := range rows {
			out = append(out, cellAt(r, c))
		}
		newRows = append(newRows, out)
	}
	return newHeader, newRows
}

// SortedOrder returns the row indices ordered by the cell at col, without
// moving rows. Cells that both parse as numbers compare numerically, anything
// else compares lexically. Rows too short to have col sort first. The order is
// stable and a negative col keeps the original order.
func SortedOrder(rows [][]string, col int, dir SortDirection) []int {
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	if col < 0 {
		return order
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := cellAt(rows[order[i]], col), cellAt(rows[order[j]], col)
		if dir == Descending {
			return compareCells(b, a) < 0
		}
		return compareCells(a, b) < 0
	})
	return order
}
