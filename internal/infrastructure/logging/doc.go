// Package logging provides structured logging for appointd.
//
// It wraps Go's standard log/slog package to give the whole application
// consistent, structured output:
//
//   - JSON output for production (machine-parsable)
//   - Text output for development (human-readable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// Never log secrets: passwords, password hashes, session tokens, and SMTP
// credentials must not appear in log fields.
package logging
