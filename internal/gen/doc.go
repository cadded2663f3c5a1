// Package gen compiles mapping tables into TypeScript converter modules.
//
// Generation approach uses text/template over a flat data model built from
// the table rows. Each module contains:
//   - the source type declaration (one field per distinct from_property)
//   - the destination type declaration (one field per distinct to_property)
//   - a converter function returning an object literal in row order
//
// Value expressions per row:
//   - Direct access: from.prop (from?.prop when the source field is optional)
//   - Transform: the row's expression with the placeholder token substituted
//   - Default: primary ?? default
package gen
