// Package api provides the HTTP server for appointd.
//
// It exposes the public booking endpoint, the admin bootstrap/login
// surface, and the gated admin operations, and serves the embedded web
// UI. The server follows the lifecycle pattern used across the codebase:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// The access gate (requireAdmin middleware) is the authorization
// boundary: every /api/admin route except setup-status, setup, and login
// demands a valid bearer token with the admin claim. All gate failures
// are externally identical 401s — a caller cannot tell a missing token
// from a malformed, mis-signed, or expired one.
//
// Thread Safety: All methods are safe for concurrent use from multiple
// goroutines.
package api
