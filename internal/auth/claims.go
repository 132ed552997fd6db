package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// defaultTokenTTLHours is the session token lifetime when no TTL is configured.
const defaultTokenTTLHours = 24

// AdminClaims extends JWT registered claims with the admin session fields.
type AdminClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// IssueToken creates a signed session token for the administrator.
// Tokens are validated by signature and expiry only; there is no
// server-side session state and no revocation list.
func IssueToken(email, secret string, ttlHours int) (string, error) {
	if ttlHours <= 0 {
		ttlHours = defaultTokenTTLHours
	}

	now := time.Now()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlHours) * time.Hour)),
			ID:        uuid.NewString(),
		},
		Email:   email,
		IsAdmin: true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ParseToken validates and parses a session token, returning its claims.
// It checks the signature, expiry, and required fields. Every failure mode
// (malformed token, bad signature, expired) surfaces as ErrTokenInvalid so
// callers cannot accidentally leak the failure subtype to clients.
func ParseToken(tokenString, secret string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: missing email", ErrTokenInvalid)
	}

	return claims, nil
}
