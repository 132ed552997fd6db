package appointments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const selectColumns = "id, name, email, phone, service, requested_at, notes, status, created_at, updated_at"

// Repository defines the interface for appointment persistence.
type Repository interface {
	Create(ctx context.Context, apt *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite-backed appointment repository.
func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new appointment. The ID is generated if empty and
// the status defaults to pending.
func (r *SQLiteRepository) Create(ctx context.Context, apt *Appointment) error {
	if apt.ID == "" {
		apt.ID = "apt-" + uuid.NewString()[:8]
	}
	if apt.Status == "" {
		apt.Status = StatusPending
	}
	if !IsValidStatus(apt.Status) {
		return ErrInvalidStatus
	}

	now := time.Now().UTC().Format(time.RFC3339)
	apt.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	apt.UpdatedAt = apt.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO appointments (id, name, email, phone, service, requested_at, notes, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		apt.ID, apt.Name, apt.Email, nullString(apt.Phone), apt.Service,
		apt.RequestedAt.UTC().Format(time.RFC3339), nullString(apt.Notes),
		string(apt.Status), now, now,
	)
	if err != nil {
		return fmt.Errorf("creating appointment: %w", err)
	}

	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM appointments WHERE id = ?", id)
	return scanAppointment(row)
}

// List returns all appointments ordered by requested time, soonest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM appointments ORDER BY requested_at ASC")
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var apts []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		apts = append(apts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}

	if apts == nil {
		apts = []Appointment{}
	}
	return apts, nil
}

// UpdateStatus moves an appointment to a new lifecycle state.
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !IsValidStatus(status) {
		return ErrInvalidStatus
	}

	now := time.Now().UTC().Format(time.RFC3339)
	result, err := r.db.ExecContext(ctx,
		"UPDATE appointments SET status = ?, updated_at = ? WHERE id = ?",
		string(status), now, id,
	)
	if err != nil {
		return fmt.Errorf("updating appointment status: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an appointment by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM appointments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is an interface over sql.Row and sql.Rows Scan methods.
type scanner interface {
	Scan(dest ...any) error
}

// scanAppointment scans an appointment from a row or rows cursor.
func scanAppointment(s scanner) (*Appointment, error) {
	var a Appointment
	var phone, notes sql.NullString
	var status, requestedAt, createdAt, updatedAt string

	err := s.Scan(&a.ID, &a.Name, &a.Email, &phone, &a.Service,
		&requestedAt, &notes, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning appointment: %w", err)
	}

	a.Status = Status(status)
	if phone.Valid {
		a.Phone = phone.String
	}
	if notes.Valid {
		a.Notes = notes.String
	}

	a.RequestedAt, _ = time.Parse(time.RFC3339, requestedAt) //nolint:errcheck // format is controlled
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)     //nolint:errcheck // format is controlled
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)     //nolint:errcheck // format is controlled

	return &a, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
