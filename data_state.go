package main

import (
	"regexp"

	"github.com/andareed/siftly-tablegraph/tablegraph"
)

type dataState struct {
	// as loaded; never reordered
	sourceHeader []string
	sourceRows   [][]string

	options tablegraph.TableOptions

	// derived by rebuildTable
	header          []ColumnMeta
	rows            []tableRow
	filterRegex     *regexp.Regexp
	filteredIndices []int
	labels          []string // first column values when the time axis is horizontal
}
