// Package auth provides authentication for the appointd admin surface.
//
// It implements a deliberately narrow single-administrator model:
//   - bcrypt password hashing (fixed cost, per-hash random salt)
//   - signed HS256 session tokens carrying an is_admin claim (24h expiry)
//   - a SQLite-backed store that can hold at most one administrator record
//
// There is no password recovery, no roles beyond the single admin claim,
// and no token revocation: a token is valid exactly while its signature
// verifies and its expiry has not passed. The bootstrap record is created
// once and never updated or deleted.
package auth
