package auth

import (
	"errors"
	"regexp"
	"time"
)

// emailPattern is a light shape check, not full RFC 5322 validation.
// The address is matched case-sensitively everywhere it is compared.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// maxEmailLength is the maximum accepted administrator email length.
const maxEmailLength = 254

// IsValidEmail checks if an email address is plausibly shaped.
func IsValidEmail(email string) bool {
	return len(email) <= maxEmailLength && emailPattern.MatchString(email)
}

// Admin is the sole administrator identity.
type Admin struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialised
	CreatedAt    time.Time `json:"created_at"`
}

// Sentinel errors for auth operations.
var (
	ErrAdminExists        = errors.New("admin account already exists")
	ErrAdminNotFound      = errors.New("admin account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
)
