package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tablegraph/config"
	"github.com/andareed/siftly-tablegraph/dialogs"
	"github.com/andareed/siftly-tablegraph/ifql"
	"github.com/andareed/siftly-tablegraph/logging"
	"github.com/andareed/siftly-tablegraph/tablegraph"
)

// --- Wire format ---

const snapshotVersion = 1

type snapshotDTO struct {
	Version int                     `json:"version"`
	Options tablegraph.TableOptions `json:"options"`
	Header  []string                `json:"header"`
	Rows    [][]string              `json:"rows"`
	Query   []string                `json:"query,omitempty"`
	Filter  string                  `json:"filter,omitempty"`

	// ColumnWidths are pixel widths for a browser rendering of the displayed
	// columns. Derived on save, ignored on load.
	ColumnWidths []columnWidthDTO `json:"columnWidths,omitempty"`
}

type columnWidthDTO struct {
	Name   string  `json:"name"`
	Pixels float64 `json:"pixels"`
}

// pixelWidths sizes the displayed columns with the pixel calculator: time
// columns from the format, the labels column from the field names it lists,
// every other column from its longest value or header.
func (m *model) pixelWidths() []columnWidthDTO {
	var labelFields []tablegraph.FieldName
	if visible := m.data.options.VisibleFieldNames(); len(visible) > 1 {
		labelFields = visible[1:]
	}

	out := make([]columnWidthDTO, 0, len(m.data.header))
	for _, col := range m.data.header {
		if !col.Visible {
			continue
		}
		var px float64
		switch col.Role {
		case RoleTime:
			px = tablegraph.TimeColumnWidth(m.data.options.TimeFormat)
		case RoleLabels:
			px, _ = tablegraph.LabelsColumnWidth(m.data.labels, labelFields)
		default:
			values := []string{col.Name}
			for _, r := range m.data.rows {
				if col.Index < len(r.cols) {
					values = append(values, r.cols[col.Index])
				}
			}
			px, _ = tablegraph.LabelsColumnWidth(values, []tablegraph.FieldName{{InternalName: col.Name}})
		}
		out = append(out, columnWidthDTO{Name: col.Name, Pixels: px})
	}
	return out
}

func defaultSaveName(inputPath, ext string) string {
	if inputPath == "" {
		return "table" + ext
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// writeFile handles a confirmed path prompt.
func (m *model) writeFile(kind dialogs.PromptKind, path string) tea.Cmd {
	var err error
	switch kind {
	case dialogs.PromptSave:
		err = SaveModel(m, path)
	case dialogs.PromptExport:
		err = ExportModel(m, path)
	case dialogs.PromptOptions:
		err = config.SaveTableOptions(path, m.data.options)
	default:
		err = fmt.Errorf("unknown prompt %v", kind)
	}
	if err != nil {
		logging.Errorf("%s %s: %v", kind, path, err)
		return m.startNotice(fmt.Sprintf("%s failed: %v", kind, err), "error", noticeDuration)
	}
	logging.Infof("%s written to %s", kind, path)
	return m.startNotice(fmt.Sprintf("Wrote %s", path), "success", noticeDuration)
}

// ExportModel writes the displayed header and the currently filtered rows,
// with times in the current format, to a CSV file.
func ExportModel(m *model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, 0, len(m.data.header))
	for _, col := range m.data.header {
		header = append(header, col.Name)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, idx := range m.data.filteredIndices {
		if idx < 0 || idx >= len(m.data.rows) {
			return fmt.Errorf("filtered index %d out of range", idx)
		}
		if err := w.Write(m.data.rows[idx].cols); err != nil {
			return fmt.Errorf("write row %d: %w", idx, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// SaveModel writes the source table, options, query and filter to a JSON file.
func SaveModel(m *model, path string) error {
	dto := snapshotDTO{
		Version: snapshotVersion,
		Options: m.data.options,
		Header:  append([]string(nil), m.data.sourceHeader...),
		Rows:    make([][]string, 0, len(m.data.sourceRows)),

		ColumnWidths: m.pixelWidths(),
	}
	for _, r := range m.data.sourceRows {
		dto.Rows = append(dto.Rows, append([]string(nil), r...))
	}
	for _, n := range m.timeMachine.Nodes() {
		dto.Query = append(dto.Query, n.Name)
	}
	if m.data.filterRegex != nil {
		dto.Filter = m.data.filterRegex.String()
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadModel replaces the contents of m with the snapshot from path.
func LoadModel(m *model, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if dto.Version != snapshotVersion {
		return fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}
	if err := dto.Options.Validate(); err != nil {
		return fmt.Errorf("snapshot options: %w", err)
	}
	if dto.Options.SortBy.Direction == "" {
		dto.Options.SortBy.Direction = tablegraph.Ascending
	}

	m.data.sourceHeader = dto.Header
	m.data.sourceRows = dto.Rows
	m.data.options = dto.Options

	nodes := make([]ifql.Node, len(dto.Query))
	for i, name := range dto.Query {
		nodes[i] = ifql.Node{Name: name}
	}
	m.timeMachine = ifql.NewTimeMachine(m.timeMachine.Button().Funcs(), nodes)

	m.rebuildTable()
	if err := m.setFilterPattern(dto.Filter); err != nil {
		return fmt.Errorf("snapshot filter: %w", err)
	}
	return nil
}
