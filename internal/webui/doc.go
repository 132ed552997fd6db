// Package webui serves the embedded admin web UI.
//
// The static assets are embedded into the Go binary using the go:embed
// directive, eliminating any runtime dependency on external files. The
// Handler function returns an http.Handler that serves these assets with
// SPA fallback routing: if a requested file does not exist, index.html is
// served so that client-side routing works correctly.
//
// The UI carries its own route guard (guard.js) that redirects
// unauthenticated navigation to the login view. That guard reads locally
// mutable browser state and is a rendering convenience only — the server's
// access gate in internal/api remains the sole authorization boundary.
package webui
