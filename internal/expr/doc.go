// Package expr substitutes the placeholder token of a transform expression
// with a source-field access expression.
//
// Expressions are scanned rather than searched: a token occurrence is a
// placeholder only in operand position and outside string literals, so with
// the default "?" token
//
//	?.trim() ?? ""        -> from.name.trim() ?? ""
//	? > 0 ? "yes" : "no"  -> from.n > 0 ? "yes" : "no"
//	`#${?}`               -> `#${from.id}`
//
// ternaries, optional chaining, nullish coalescing and quoted text are left
// as written.
package expr
