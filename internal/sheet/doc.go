// Package sheet reads mapping tables out of .xlsx workbooks.
//
// The "target" sheet is required. Its first non-empty row is a header; the
// columns may appear in any order and any spelling NormalizeIdent folds to a
// known name ("From Property", "fromProperty"). The legacy "method" column
// is accepted for transform_expression. The optional "config" sheet holds
// key/value pairs in its first two columns.
package sheet
