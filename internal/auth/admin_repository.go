package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// adminRowID pins the single admin row. The table's CHECK constraint
// rejects any other value, so Create is an atomic create-if-absent.
const adminRowID = 1

// AdminRepository defines the interface for administrator persistence.
// The store holds at most one record: Create fails with ErrAdminExists
// once a record is present, and nothing ever updates or deletes it.
type AdminRepository interface {
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, admin *Admin) error
	Get(ctx context.Context) (*Admin, error)
}

// SQLiteAdminRepository implements AdminRepository using SQLite.
type SQLiteAdminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new SQLite-backed admin repository.
func NewAdminRepository(db *sql.DB) *SQLiteAdminRepository {
	return &SQLiteAdminRepository{db: db}
}

// Exists reports whether the administrator record has been created.
func (r *SQLiteAdminRepository) Exists(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admin_account").Scan(&count); err != nil {
		return false, fmt.Errorf("checking admin existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts the administrator record. The insert targets the fixed
// row id, so two concurrent bootstrap calls cannot both succeed: the
// second fails with ErrAdminExists on the constraint violation rather
// than racing a separate existence check.
func (r *SQLiteAdminRepository) Create(ctx context.Context, admin *Admin) error {
	now := time.Now().UTC().Format(time.RFC3339)
	admin.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admin_account (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		adminRowID, admin.Email, admin.PasswordHash, now,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrAdminExists
		}
		return fmt.Errorf("creating admin account: %w", err)
	}

	return nil
}

// Get retrieves the administrator record.
func (r *SQLiteAdminRepository) Get(ctx context.Context) (*Admin, error) {
	var a Admin
	var createdAt string

	err := r.db.QueryRowContext(ctx,
		"SELECT email, password_hash, created_at FROM admin_account WHERE id = ?", adminRowID,
	).Scan(&a.Email, &a.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("loading admin account: %w", err)
	}

	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled

	return &a, nil
}

// isConstraintViolation checks if a SQLite error is a primary-key or
// UNIQUE constraint violation.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
