// Package slug derives stable identifiers from titles.
//
// A Generator lowercases its input and replaces every character outside a keep
// alphabet with a separator. Two policies exist:
//
//   - alphanumeric: keeps [a-z0-9] (default)
//   - alphabetic: keeps [a-z] only, digits become separators too
//
// The policy is fixed at construction. Blog identifiers are derived once on create,
// and re-deriving from the same title with the same policy always yields the same id.
//
// # Usage
//
//	gen, err := slug.New(cfg.Slug)
//	id := gen.Slug("Goa Trip 2025") // "goa-trip-2025"
package slug
