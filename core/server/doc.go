// Package server holds the HTTP server configuration.
//
// The main entry point (cmd/start.go) builds the Fiber app from this
// configuration: listen port, API key for the auth middleware, and the request body limit
// that bounds image uploads.
package server
