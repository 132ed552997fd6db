package appointments

import (
	"errors"
	"time"
)

// Status represents an appointment's lifecycle state.
type Status string

const (
	// StatusPending is the initial state of every booking request.
	StatusPending Status = "pending"

	// StatusConfirmed means the administrator accepted the request.
	StatusConfirmed Status = "confirmed"

	// StatusCancelled means the request was declined or withdrawn.
	StatusCancelled Status = "cancelled"
)

// ValidStatuses is the set of statuses an appointment can be moved to.
var ValidStatuses = []Status{StatusPending, StatusConfirmed, StatusCancelled}

// IsValidStatus returns true if s is a recognised appointment status.
func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Appointment represents a single booking request.
type Appointment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Service     string    `json:"service"`
	RequestedAt time.Time `json:"requested_at"`
	Notes       string    `json:"notes,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Sentinel errors for appointment operations.
var (
	ErrNotFound      = errors.New("appointment not found")
	ErrInvalidStatus = errors.New("invalid appointment status")
)
