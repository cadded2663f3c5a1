// Package mapping defines the field mapping table read from a workbook and
// validates it before code generation.
//
// A table is an ordered list of rows, one per destination field:
//
//	from_property | from_data_type | from_optional | to_property | to_data_type | to_optional | transform_expression | default_value
//	id            | number         |               | identifier  | number       |             |                      |
//	name          | string         | true          | label       | string       |             | ?.trim()             | ""
//
// plus an optional key/value configuration (type names, function name,
// placeholder token).
//
// # Duplicate names
//
// Rows that share a to_property collapse into one destination field: the
// field keeps the position of its first row and the type and value of its
// last row. Validate reports this as a duplicate_to_property warning, which
// strict mode promotes to an error.
package mapping
