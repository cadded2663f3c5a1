package mapping

import "fmt"

// Row is one field mapping. Empty strings mean "absent".
type Row struct {
	FromProperty string
	FromDataType string
	FromOptional bool
	ToProperty   string
	ToDataType   string
	ToOptional   bool
	// Transform is a code snippet in which the placeholder token stands for
	// the source field.
	Transform string
	// Default is used when the primary expression is null or undefined.
	Default string
	// Line is the 1-based spreadsheet row the mapping came from (0 if unknown).
	Line int
}

// HasSource reports whether the row reads a source field.
func (r *Row) HasSource() bool {
	return r.FromProperty != ""
}

// HasTransform reports whether the row carries a transform expression.
func (r *Row) HasTransform() bool {
	return r.Transform != ""
}

// HasDefault reports whether the row carries a default value.
func (r *Row) HasDefault() bool {
	return r.Default != ""
}

// Location returns a human-readable position for diagnostics.
func (r *Row) Location() string {
	if r.Line == 0 {
		return TargetSheet
	}

	return fmt.Sprintf("%s row %d", TargetSheet, r.Line)
}

// Table is the parsed content of one workbook.
type Table struct {
	// Source is the path of the workbook the table was read from.
	Source string
	Rows   []Row
	Config Config
}
