// Package diagnostic provides structured warnings and errors for mapping
// tables read from workbooks.
//
// Key capabilities:
//   - Error/warning/info collection with stable codes
//   - Cell-level locations (file, sheet, row)
//   - "Did you mean" suggestions for misspelled headers and config keys
//   - Promotion of selected warnings to errors (strict mode)
package diagnostic
