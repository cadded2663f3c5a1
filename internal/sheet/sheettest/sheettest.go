// Package sheettest builds fixture workbooks for tests.
package sheettest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is a named sheet whose rows are written starting at A1.
type Sheet struct {
	Name string
	Rows [][]any
}

// Header is the canonical target sheet header.
var Header = []any{
	"from_property", "from_data_type", "from_optional",
	"to_property", "to_data_type", "to_optional",
	"transform_expression", "default_value",
}

// Target returns a target sheet with the canonical header followed by rows.
func Target(rows ...[]any) Sheet {
	return Sheet{Name: "target", Rows: append([][]any{Header}, rows...)}
}

// Config returns a config sheet from alternating keys and values.
func Config(kv ...string) Sheet {
	s := Sheet{Name: "config", Rows: [][]any{{"key", "value"}}}
	for i := 0; i+1 < len(kv); i += 2 {
		s.Rows = append(s.Rows, []any{kv[i], kv[i+1]})
	}

	return s
}

// Write saves a workbook named name into dir and returns its path.
func Write(t testing.TB, dir, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(defaultSheet, s.Name))
		} else {
			_, err := f.NewSheet(s.Name)
			require.NoError(t, err)
		}

		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.Name, cell, &row))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))

	return path
}

// WriteTemp is Write into a fresh t.TempDir().
func WriteTemp(t testing.TB, name string, sheets ...Sheet) string {
	t.Helper()

	return Write(t, t.TempDir(), name, sheets...)
}
