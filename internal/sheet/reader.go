package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"convertor-generator/internal/common"
	"convertor-generator/internal/diagnostic"
	"convertor-generator/internal/mapping"
	"convertor-generator/internal/match"
)

// Diagnostic codes produced while reading a workbook.
const (
	CodeMissingTargetTable = "missing_target_table"
	CodeMissingColumn      = "missing_column"
	CodeUnknownColumn      = "unknown_column"
	CodeDuplicateColumn    = "duplicate_column"
	CodeInvalidBool        = "invalid_bool"
	CodeEmptyTable         = "empty_target_table"
	CodeNoConfigSheet      = "no_config_sheet"
)

// Workbook is an open spreadsheet.
type Workbook struct {
	file *excelize.File
}

// OpenFile opens the workbook at path.
func OpenFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}

	return &Workbook{file: f}, nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Rows returns the cell text of the named sheet. The name matches exactly
// first, then case-insensitively. ok is false when no sheet matches.
func (w *Workbook) Rows(name string) (rows [][]string, ok bool, err error) {
	actual, ok := w.lookup(name)
	if !ok {
		return nil, false, nil
	}

	rows, err = w.file.GetRows(actual)
	if err != nil {
		return nil, true, fmt.Errorf("reading sheet %q: %w", actual, err)
	}

	return rows, true, nil
}

func (w *Workbook) lookup(name string) (string, bool) {
	sheets := w.SheetNames()

	for _, s := range sheets {
		if s == name {
			return s, true
		}
	}

	i := common.IndexFunc(sheets, func(s string) bool {
		return strings.EqualFold(strings.TrimSpace(s), name)
	})
	if i < 0 {
		return "", false
	}

	return sheets[i], true
}

// ReadFile opens path and reads its mapping table. base supplies the config
// the workbook's config sheet overrides. Problems with the content are
// reported in the returned diagnostics; the error is for I/O failures.
func ReadFile(path string, base mapping.Config) (*mapping.Table, *diagnostic.Diagnostics, error) {
	wb, err := OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer wb.Close()

	table, diags, err := wb.ReadTable(base)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	table.Source = path

	return table, diags, nil
}

// ReadTable reads the target and config sheets.
func (w *Workbook) ReadTable(base mapping.Config) (*mapping.Table, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}
	table := &mapping.Table{Config: base}

	targetRows, ok, err := w.Rows(mapping.TargetSheet)
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		diags.AddError(CodeMissingTargetTable,
			fmt.Sprintf("%s sheet does not exist (sheets: %s)", mapping.TargetSheet, strings.Join(w.SheetNames(), ", ")),
			"")

		return table, diags, nil
	}

	table.Rows = parseTarget(targetRows, diags)

	configRows, ok, err := w.Rows(mapping.ConfigSheet)
	if err != nil {
		return nil, nil, err
	}

	if ok {
		table.Config.Apply(parseConfig(configRows), diags)
	} else {
		diags.AddInfo(CodeNoConfigSheet, "no config sheet, default names are used", mapping.ConfigSheet)
	}

	return table, diags, nil
}

// header maps column positions to known columns.
type header struct {
	line    int
	columns []Column
}

func parseHeader(cells []string, line int, diags *diagnostic.Diagnostics) header {
	h := header{line: line, columns: make([]Column, len(cells))}
	seen := map[Column]bool{}
	loc := fmt.Sprintf("%s row %d", mapping.TargetSheet, line)

	for i, cell := range cells {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}

		col := ParseColumn(name)
		switch {
		case col == ColumnUnknown:
			diags.AddWarning(CodeUnknownColumn,
				fmt.Sprintf("unknown column %q is ignored", name), loc,
				match.Suggest(name, columnNames())...)
		case seen[col]:
			diags.AddWarning(CodeDuplicateColumn,
				fmt.Sprintf("column %q appears more than once; the first one is used", name), loc)
		default:
			h.columns[i] = col
			seen[col] = true
		}
	}

	if !seen[ColumnToProperty] {
		diags.AddError(CodeMissingColumn,
			fmt.Sprintf("header has no %s column", ColumnToProperty), loc)
	}

	return h
}

func parseTarget(rows [][]string, diags *diagnostic.Diagnostics) []mapping.Row {
	var (
		h      *header
		result []mapping.Row
	)

	for i, cells := range rows {
		line := i + 1
		if isBlank(cells) {
			continue
		}

		if h == nil {
			parsed := parseHeader(cells, line, diags)
			h = &parsed

			continue
		}

		result = append(result, h.row(cells, line, diags))
	}

	if h != nil && !diags.HasErrors() && common.IsEmpty(result) {
		diags.AddWarning(CodeEmptyTable, "target sheet has no mapping rows", mapping.TargetSheet)
	}

	if h == nil {
		diags.AddError(CodeMissingColumn, "target sheet is empty", mapping.TargetSheet)
	}

	return result
}

func (h *header) row(cells []string, line int, diags *diagnostic.Diagnostics) mapping.Row {
	r := mapping.Row{Line: line}

	for i, raw := range cells {
		if i >= len(h.columns) {
			break
		}

		v := strings.TrimSpace(raw)

		switch col := h.columns[i]; col {
		case ColumnFromProperty:
			r.FromProperty = v
		case ColumnFromDataType:
			r.FromDataType = v
		case ColumnToProperty:
			r.ToProperty = v
		case ColumnToDataType:
			r.ToDataType = v
		case ColumnTransform:
			r.Transform = v
		case ColumnDefault:
			r.Default = v
		case ColumnFromOptional, ColumnToOptional:
			b, err := ParseBool(v)
			if err != nil {
				diags.AddError(CodeInvalidBool,
					fmt.Sprintf("%s: %v", col, err),
					fmt.Sprintf("%s row %d", mapping.TargetSheet, line))
			}

			if col == ColumnFromOptional {
				r.FromOptional = b
			} else {
				r.ToOptional = b
			}
		case ColumnUnknown:
			// ignored, reported once by parseHeader
		}
	}

	return r
}

func parseConfig(rows [][]string) []mapping.KeyValue {
	var pairs []mapping.KeyValue

	headerChecked := false

	for i, cells := range rows {
		if isBlank(cells) {
			continue
		}

		key := strings.TrimSpace(cells[0])
		value := ""

		if len(cells) > 1 {
			value = strings.TrimSpace(cells[1])
		}

		if !headerChecked {
			headerChecked = true

			if match.NormalizeIdent(key) == "key" {
				continue
			}
		}

		if key == "" {
			continue
		}

		pairs = append(pairs, mapping.KeyValue{Key: key, Value: value, Line: i + 1})
	}

	return pairs
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
