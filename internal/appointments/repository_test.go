package appointments

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the appointments schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "appointments-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE appointments (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			service TEXT NOT NULL,
			requested_at TEXT NOT NULL,
			notes TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("applying appointments schema: %v", err)
	}

	return db
}

// newTestAppointment returns a minimal valid appointment.
func newTestAppointment(name string) *Appointment {
	return &Appointment{
		Name:        name,
		Email:       name + "@example.com",
		Service:     "consultation",
		RequestedAt: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(testDB(t))

	apt := newTestAppointment("alice")
	apt.Phone = "+1-555-0100"
	apt.Notes = "first visit"

	if err := repo.Create(context.Background(), apt); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if apt.ID == "" {
		t.Error("Create() should generate an ID")
	}
	if apt.Status != StatusPending {
		t.Errorf("Status = %q, want pending default", apt.Status)
	}

	got, err := repo.GetByID(context.Background(), apt.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "alice" {
		t.Errorf("Name = %q, want %q", got.Name, "alice")
	}
	if got.Phone != "+1-555-0100" {
		t.Errorf("Phone = %q, want %q", got.Phone, "+1-555-0100")
	}
	if !got.RequestedAt.Equal(apt.RequestedAt) {
		t.Errorf("RequestedAt = %v, want %v", got.RequestedAt, apt.RequestedAt)
	}
}

func TestRepository_List_OrderedByRequestedAt(t *testing.T) {
	repo := NewRepository(testDB(t))

	later := newTestAppointment("later")
	later.RequestedAt = time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC)
	earlier := newTestAppointment("earlier")
	earlier.RequestedAt = time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

	for _, apt := range []*Appointment{later, earlier} {
		if err := repo.Create(context.Background(), apt); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	apts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(apts) != 2 {
		t.Fatalf("List() returned %d appointments, want 2", len(apts))
	}
	if apts[0].Name != "earlier" || apts[1].Name != "later" {
		t.Errorf("List() order = [%s, %s], want soonest first", apts[0].Name, apts[1].Name)
	}
}

func TestRepository_List_Empty(t *testing.T) {
	repo := NewRepository(testDB(t))

	apts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if apts == nil {
		t.Error("List() should return an empty slice, not nil")
	}
	if len(apts) != 0 {
		t.Errorf("List() returned %d appointments, want 0", len(apts))
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo := NewRepository(testDB(t))

	apt := newTestAppointment("bob")
	if err := repo.Create(context.Background(), apt); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.UpdateStatus(context.Background(), apt.ID, StatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	got, err := repo.GetByID(context.Background(), apt.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != StatusConfirmed {
		t.Errorf("Status = %q, want confirmed", got.Status)
	}
}

func TestRepository_UpdateStatus_Invalid(t *testing.T) {
	repo := NewRepository(testDB(t))

	apt := newTestAppointment("carol")
	if err := repo.Create(context.Background(), apt); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.UpdateStatus(context.Background(), apt.ID, Status("archived"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidStatus", err)
	}
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewRepository(testDB(t))

	err := repo.UpdateStatus(context.Background(), "apt-missing", StatusConfirmed)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(testDB(t))

	apt := newTestAppointment("dave")
	if err := repo.Create(context.Background(), apt); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(context.Background(), apt.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := repo.GetByID(context.Background(), apt.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(context.Background(), apt.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
