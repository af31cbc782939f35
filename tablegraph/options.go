package tablegraph

import (
	"fmt"
	"strings"
)

// TimeFormat is a moment style pattern such as "MM/DD/YYYY" or TimeFormatCustom.
type TimeFormat string

// FieldName is a column definition: an internal identifier and an optional
// human readable display name.
type FieldName struct {
	InternalName string `json:"internalName" yaml:"internalName"`
	DisplayName  string `json:"displayName" yaml:"displayName"`
	Visible      bool   `json:"visible" yaml:"visible"`
}

// Name is the header text: the display name when set, else the internal name.
func (f FieldName) Name() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.InternalName
}

type Wrapping string

const (
	WrappingTruncate   Wrapping = "truncate"
	WrappingWrap       Wrapping = "wrap"
	WrappingSingleLine Wrapping = "single-line"
)

var wrappingOrder = []Wrapping{WrappingTruncate, WrappingWrap, WrappingSingleLine}

func (w Wrapping) Valid() bool {
	for _, v := range wrappingOrder {
		if v == w {
			return true
		}
	}
	return false
}

// Next cycles truncate -> wrap -> single-line -> truncate.
func (w Wrapping) Next() Wrapping {
	for i, v := range wrappingOrder {
		if v == w {
			return wrappingOrder[(i+1)%len(wrappingOrder)]
		}
	}
	return WrappingTruncate
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) Reverse() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortBy names the field rows are ordered by.
type SortBy struct {
	FieldName `yaml:",inline"`
	Direction SortDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
}

type TableOptions struct {
	VerticalTimeAxis bool        `json:"verticalTimeAxis" yaml:"verticalTimeAxis"`
	TimeFormat       TimeFormat  `json:"timeFormat" yaml:"timeFormat"`
	SortBy           SortBy      `json:"sortBy" yaml:"sortBy"`
	Wrapping         Wrapping    `json:"wrapping" yaml:"wrapping"`
	FieldNames       []FieldName `json:"fieldNames" yaml:"fieldNames"`
	FixFirstColumn   bool        `json:"fixFirstColumn" yaml:"fixFirstColumn"`
}

func DefaultTableOptions() TableOptions {
	return TableOptions{
		VerticalTimeAxis: VerticalTimeAxisDefault,
		TimeFormat:       TimeFormatDefault,
		SortBy:           SortBy{FieldName: TimeFieldDefault, Direction: Ascending},
		Wrapping:         WrappingTruncate,
		FieldNames:       []FieldName{TimeFieldDefault},
		FixFirstColumn:   FixFirstColumnDefault,
	}
}

// Validate checks options that came from outside the process (cell files, snapshots).
func (o TableOptions) Validate() error {
	if strings.TrimSpace(string(o.TimeFormat)) == "" {
		return fmt.Errorf("timeFormat is empty")
	}
	if !o.Wrapping.Valid() {
		return fmt.Errorf("unknown wrapping %q", o.Wrapping)
	}
	switch o.SortBy.Direction {
	case "", Ascending, Descending:
	default:
		return fmt.Errorf("unknown sort direction %q", o.SortBy.Direction)
	}
	seen := make(map[string]struct{}, len(o.FieldNames))
	for i, f := range o.FieldNames {
		if f.InternalName == "" {
			return fmt.Errorf("fieldNames[%d]: internalName is empty", i)
		}
		if _, ok := seen[f.InternalName]; ok {
			return fmt.Errorf("fieldNames[%d]: duplicate internalName %q", i, f.InternalName)
		}
		seen[f.InternalName] = struct{}{}
	}
	return nil
}

// VisibleFieldNames returns the fields currently displayed, in order.
func (o TableOptions) VisibleFieldNames() []FieldName {
	out := make([]FieldName, 0, len(o.FieldNames))
	for _, f := range o.FieldNames {
		if f.Visible {
			out = append(out, f)
		}
	}
	return out
}

// MergeFieldNames keeps the configured order and display names for known
// columns and appends unknown header columns as visible fields.
func MergeFieldNames(configured []FieldName, header []string) []FieldName {
	known := make(map[string]FieldName, len(configured))
	for _, f := range configured {
		known[f.InternalName] = f
	}
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	out := make([]FieldName, 0, len(header))
	for _, f := range configured {
		if _, ok := present[f.InternalName]; ok {
			out = append(out, f)
		}
	}
	for _, h := range header {
		if _, ok := known[h]; ok {
			continue
		}
		out = append(out, FieldName{InternalName: h, Visible: true})
	}
	return out
}
