// Package sync keeps a parent entity and everything it owns consistent across create, update and delete.
//
// Each parent kind is described by a Kind: an explicit ownership tree of Collections
// (for example package → itineraries → features) and the ReferenceSets it links to
// (blog → categories). A Synchronizer runs every call in one transaction:
//
//   - owned collections are replaced in full: rows are deleted innermost level first,
//     then reinserted in caller order, one batch per level
//   - shared references are get-or-created by name and linked clear-then-set;
//     they are never deleted
//   - the parent row is locked before update or delete, so concurrent writers on
//     one parent serialize
//
// Failures are tagged with core/errs kinds; nothing is retried internally.
package sync
