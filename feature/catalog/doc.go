// Package catalog serves the travel catalog: packages, destinations, blogs and testimonials.
//
// Every parent kind gets the same five routes, backed by a sync.Synchronizer:
//
//   - GET    /<kind>      list, newest first
//   - POST   /<kind>      create (201)
//   - GET    /<kind>/:id  read one
//   - PUT    /<kind>/:id  partial update; present collections are replaced in full
//   - DELETE /<kind>/:id  delete with everything the parent owns (204)
//
// Failures answer {"error", "kind"} with 404 for NOT_FOUND, 400 for VALIDATION_FAILED,
// 409 for CONFLICT_RETRYABLE and 503 for STORAGE_UNAVAILABLE.
package catalog
