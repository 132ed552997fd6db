package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing.
// Cost 12 keeps offline brute force expensive if the store ever leaks,
// while a single hash stays well under interactive-login latency budgets.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt.
// The salt is generated per hash by the bcrypt primitive itself.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// The comparison is constant-time, delegated to the bcrypt primitive.
// Returns false (without error) for a simple mismatch; an error indicates
// a malformed stored hash.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("comparing password: %w", err)
}
