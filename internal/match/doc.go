// Package match provides identifier normalization and edit-distance helpers
// used to recognize spreadsheet headers and config keys written in any
// casing, and to suggest the intended name when one is misspelled.
//
// Key functions:
//   - NormalizeIdent: folds "From Property", "fromProperty" and
//     "from_property" to the same key
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names close to an unknown one
package match
