package auth

import (
	"context"

	"errors"
	"testing"
)

func TestAdminRepository_ExistsEmpty(t *testing.T) {
	db := testDB(t)
	repo := NewAdminRepository(db)

	exists, err := repo.Exists(context.Background())
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true on empty store")
	}
}

func TestAdminRepository_CreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewAdminRepository(db)

	admin := &Admin{
		Email:        "admin@example.com",
		PasswordHash: "$2a$12$fakehashfortest",
	}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if admin.CreatedAt.IsZero() {
		t.Error("Create() should set CreatedAt")
	}

	exists, err := repo.Exists(context.Background())
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after Create()")
	}

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Email != "admin@example.com" {
		t.Errorf("Email = %q, want %q", got.Email, "admin@example.com")
	}
	if got.PasswordHash != admin.PasswordHash {
		t.Error("PasswordHash does not round-trip")
	}
	if !got.CreatedAt.Equal(admin.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, admin.CreatedAt)
	}
}

func TestAdminRepository_CreateTwice(t *testing.T) {
	db := testDB(t)
	repo := NewAdminRepository(db)

	first := &Admin{Email: "first@example.com", PasswordHash: "hash-one"}
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	second := &Admin{Email: "second@example.com", PasswordHash: "hash-two"}
	err := repo.Create(context.Background(), second)
	if !errors.Is(err, ErrAdminExists) {
		t.Fatalf("second Create() error = %v, want ErrAdminExists", err)
	}

	// The stored record must be unchanged by the rejected create
	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Email != "first@example.com" {
		t.Errorf("stored email = %q, want the first admin's", got.Email)
	}
	if got.PasswordHash != "hash-one" {
		t.Error("stored hash changed after rejected create")
	}
}

func TestAdminRepository_GetNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewAdminRepository(db)

	_, err := repo.Get(context.Background())
	if !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("Get() error = %v, want ErrAdminNotFound", err)
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"admin@clinic.example.co.uk", true},
		{"", false},
		{"no-at-sign", false},
		{"two@@ats.com", false},
		{"spaces in@side.com", false},
		{"missing@tld", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
