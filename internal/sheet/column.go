package sheet

import "convertor-generator/internal/match"

//go:generate go tool stringer -type=Column -linecomment -output=column_string.go

// Column identifies a known column of the target sheet.
type Column int

const (
	ColumnUnknown      Column = iota // unknown
	ColumnFromProperty               // from_property
	ColumnFromDataType               // from_data_type
	ColumnFromOptional               // from_optional
	ColumnToProperty                 // to_property
	ColumnToDataType                 // to_data_type
	ColumnToOptional                 // to_optional
	ColumnTransform                  // transform_expression
	ColumnDefault                    // default_value
)

// Columns lists every known column in canonical order.
var Columns = []Column{
	ColumnFromProperty, ColumnFromDataType, ColumnFromOptional,
	ColumnToProperty, ColumnToDataType, ColumnToOptional,
	ColumnTransform, ColumnDefault,
}

// headerAliases are extra normalized spellings accepted for a column.
var headerAliases = map[string]Column{
	"method":     ColumnTransform,
	"transform":  ColumnTransform,
	"expression": ColumnTransform,
	"default":    ColumnDefault,
	"fromtype":   ColumnFromDataType,
	"totype":     ColumnToDataType,
}

var headerIndex = func() map[string]Column {
	idx := make(map[string]Column, len(Columns)+len(headerAliases))
	for _, c := range Columns {
		idx[match.NormalizeIdent(c.String())] = c
	}

	for k, c := range headerAliases {
		idx[k] = c
	}

	return idx
}()

// ParseColumn maps a header cell to a known column.
func ParseColumn(header string) Column {
	return headerIndex[match.NormalizeIdent(header)]
}

func columnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.String()
	}

	return names
}
