package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/appointd/appointd/internal/auth"
)

// minPasswordLength is the minimum accepted administrator password length.
const minPasswordLength = 8

// credentialsRequest is the request body for POST /api/admin/setup and
// POST /api/admin/login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the success body for setup and login.
type tokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// handleSetupStatus reports whether the one-time bootstrap is still needed.
// Pure read, no side effects.
func (s *Server) handleSetupStatus(w http.ResponseWriter, r *http.Request) {
	exists, err := s.adminRepo.Exists(r.Context())
	if err != nil {
		s.logger.Error("setup status check failed", "error", err)
		writeInternalError(w, "failed to check setup status")
		return
	}

	message := "admin account is configured"
	if !exists {
		message = "admin account has not been created"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"needs_setup": !exists,
		"message":     message,
	})
}

// handleSetup provisions the sole administrator account.
//
// The create is atomic against the store's fixed-row constraint, so a
// second setup call fails with already-exists no matter how the calls
// interleave. Success returns a freshly issued session token.
func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}
	if !auth.IsValidEmail(req.Email) {
		writeBadRequest(w, "email is not valid")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeBadRequest(w, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", "error", err)
		writeInternalError(w, "failed to create admin account")
		return
	}

	admin := &auth.Admin{
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(r.Context(), admin); err != nil {
		if errors.Is(err, auth.ErrAdminExists) {
			writeBadRequest(w, "admin account already exists")
			return
		}
		s.logger.Error("create admin failed", "error", err)
		writeInternalError(w, "failed to create admin account")
		return
	}

	token, err := auth.IssueToken(admin.Email, s.secCfg.JWT.Secret, s.secCfg.JWT.TokenTTLHours)
	if err != nil {
		s.logger.Error("issue token failed", "error", err)
		writeInternalError(w, "failed to issue session token")
		return
	}

	s.logger.Info("admin account created", "email", admin.Email)

	writeJSON(w, http.StatusCreated, tokenResponse{
		Success: true,
		Message: "admin account created",
		Token:   token,
	})
}

// handleLogin authenticates the administrator and returns a session token.
//
// Unknown email and wrong password are indistinguishable from outside:
// same status, same body. The unknown-email path still burns a bcrypt
// comparison so response timing does not betray whether the email matched.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	admin, err := s.adminRepo.Get(r.Context())
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			auth.VerifyPassword(req.Password, dummyHash) //nolint:errcheck // timing equalisation only
			s.logger.Debug("login rejected: no admin account exists")
			writeInvalidCredentials(w)
			return
		}
		s.logger.Error("load admin failed", "error", err)
		writeInternalError(w, "failed to verify credentials")
		return
	}

	// Case-sensitive exact match on the stored identity.
	if req.Email != admin.Email {
		auth.VerifyPassword(req.Password, dummyHash) //nolint:errcheck // timing equalisation only
		s.logger.Debug("login rejected: unknown email")
		writeInvalidCredentials(w)
		return
	}

	ok, err := auth.VerifyPassword(req.Password, admin.PasswordHash)
	if err != nil {
		s.logger.Error("verify password failed", "error", err)
		writeInternalError(w, "failed to verify credentials")
		return
	}
	if !ok {
		s.logger.Debug("login rejected: wrong password")
		writeInvalidCredentials(w)
		return
	}

	token, err := auth.IssueToken(admin.Email, s.secCfg.JWT.Secret, s.secCfg.JWT.TokenTTLHours)
	if err != nil {
		s.logger.Error("issue token failed", "error", err)
		writeInternalError(w, "failed to issue session token")
		return
	}

	s.logger.Info("admin logged in", "email", admin.Email)

	writeJSON(w, http.StatusOK, tokenResponse{
		Success: true,
		Message: "login successful",
		Token:   token,
	})
}

// handleVerify echoes the decoded claims so a caller can confirm its
// token is still valid. The access gate has already done the work.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		// Unreachable behind requireAdmin; belt and braces.
		writeUnauthenticated(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"admin": map[string]any{
			"email":    claims.Email,
			"is_admin": claims.IsAdmin,
		},
	})
}

// dummyHash is a valid bcrypt hash of a random string, used to equalise
// login timing when no stored hash is available to compare against.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
