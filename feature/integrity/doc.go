// Package integrity provides health checks for the catalog's storage and database.
//
// # Checks Provided
//
//   - Structure: the upload bucket and the upload folder exist in object storage.
//   - Schema: every catalog table and column exists in the connected database.
//   - Orphans: no child row (itinerary, feature, FAQ, image...) or blog_categories
//     row points at a missing owner. Deletes keep this true; the check catches rows
//     written around the API.
//   - Media: image URLs pointing into the bucket are reconciled with the objects
//     under the upload folder. Uploads nothing references can be purged; references
//     to missing objects are reported only.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks concurrently, read only.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/orphans : Runs orphan check (supports ?fix=true).
//   - GET /integrity/media : Runs media reconciliation (supports ?purge=true).
//   - GET /integrity/media/{key} : Reports one object, from cached indices when fresh.
package integrity
