// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: static API key validation (X-API-Key), disabled when no key is configured.
//   - rayid: assigns every request a RayID, stored in the context locals and echoed in
//     the X-Ray-ID response header for tracing.
//
// RayID must be registered first so that every log line, including auth rejections,
// carries it.
package middleware
