// Package database provides SQLite connectivity for appointd.
//
// This package manages:
//   - Database connection with WAL mode for concurrent access
//   - Schema migrations embedded into the binary
//   - Connection lifecycle and health checks
//
// Security Considerations:
//   - All queries use parameterised statements (no SQL injection)
//   - The database file permissions are set to 0600 (owner read/write only);
//     the file holds the administrator credential hash
package database
