package tablegraph

import (
	"strings"
	"unicode/utf8"

	"github.com/andareed/siftly-tablegraph/textmetrics"
)

// Measurer reports the rendered width of a string.
type Measurer interface {
	Measure(text string) float64
}

// Calculator turns column content into a column width: measured + Padding.
type Calculator struct {
	Measurer Measurer
	Padding  float64
}

// NewPixelCalculator measures with the bold monospace face at 13px.
func NewPixelCalculator() Calculator {
	return Calculator{Measurer: textmetrics.MustFont(), Padding: CellHorizontalPadding}
}

// longest placeholders for each variable-width token
var timeFormatSubstitutions = []struct{ token, longest string }{
	{"MMMM", "September"},
	{"dddd", "Wednesday"},
	{"A", "AM"},
	{"h", "00"},
}

// WorstCaseTimeString returns format with the first occurrence of each
// variable-width token replaced by its widest rendering.
func WorstCaseTimeString(format TimeFormat) string {
	s := string(format)
	for _, sub := range timeFormatSubstitutions {
		s = strings.Replace(s, sub.token, sub.longest, 1)
	}
	return s
}

// TimeColumnWidth is wide enough for any date the format can produce.
func (c Calculator) TimeColumnWidth(format TimeFormat) float64 {
	return c.Measurer.Measure(WorstCaseTimeString(format)) + c.Padding
}

// LabelsColumnWidth sizes the labels column. ok is false while labels are
// unknown. With one field the longest label wins; with several fields the
// longest field name wins and labels are ignored. Ties keep the first.
func (c Calculator) LabelsColumnWidth(labels []string, fieldNames []FieldName) (width float64, ok bool) {
	if labels == nil {
		return 0, false
	}
	if len(fieldNames) == 1 {
		return c.Measurer.Measure(longest(labels)) + c.Padding, true
	}

	names := make([]string, len(fieldNames))
	for i, f := range fieldNames {
		names[i] = f.Name()
	}
	return c.Measurer.Measure(longest(names)) + c.Padding, true
}

func longest(values []string) string {
	out, outLen := "", 0
	for i, v := range values {
		if n := utf8.RuneCountInString(v); i == 0 || n > outLen {
			out, outLen = v, n
		}
	}
	return out
}

// TimeColumnWidth uses the pixel calculator.
func TimeColumnWidth(format TimeFormat) float64 {
	return NewPixelCalculator().TimeColumnWidth(format)
}

// LabelsColumnWidth uses the pixel calculator.
func LabelsColumnWidth(labels []string, fieldNames []FieldName) (float64, bool) {
	return NewPixelCalculator().LabelsColumnWidth(labels, fieldNames)
}
