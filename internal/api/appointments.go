package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/appointd/appointd/internal/appointments"
	"github.com/appointd/appointd/internal/auth"
)

// Live feed event names.
const (
	eventAppointmentCreated = "appointment.created"
	eventAppointmentUpdated = "appointment.updated"
	eventAppointmentDeleted = "appointment.deleted"
)

// createAppointmentRequest is the request body for POST /api/appointments.
type createAppointmentRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	RequestedAt string `json:"requested_at"`
	Notes       string `json:"notes"`
}

// updateAppointmentRequest is the request body for PATCH /api/admin/appointments/{id}.
type updateAppointmentRequest struct {
	Status string `json:"status"`
}

// handleCreateAppointment accepts a public booking request.
//
// No authentication: this is the one write the outside world is allowed
// to make. The booking lands as pending, the admin consoles get a live
// event, and a confirmation mail goes out best-effort.
func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Service == "" || req.RequestedAt == "" {
		writeBadRequest(w, "name, email, service and requested_at are required")
		return
	}
	if !auth.IsValidEmail(req.Email) {
		writeBadRequest(w, "email is not valid")
		return
	}
	requestedAt, err := time.Parse(time.RFC3339, req.RequestedAt)
	if err != nil {
		writeBadRequest(w, "requested_at must be an RFC 3339 timestamp")
		return
	}

	apt := &appointments.Appointment{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		RequestedAt: requestedAt,
		Notes:       req.Notes,
		Status:      appointments.StatusPending,
	}

	if err := s.appointmentRepo.Create(r.Context(), apt); err != nil {
		s.logger.Error("create appointment failed", "error", err)
		writeInternalError(w, "failed to create appointment")
		return
	}

	s.logger.Info("appointment requested",
		"id", apt.ID,
		"service", apt.Service,
		"requested_at", apt.RequestedAt.Format(time.RFC3339),
	)

	if s.hub != nil {
		s.hub.Broadcast(eventAppointmentCreated, apt)
	}
	s.notifyBooking(apt)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"message":     "appointment requested",
		"appointment": apt,
	})
}

// handleListAppointments returns every appointment, soonest first.
func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	apts, err := s.appointmentRepo.List(r.Context())
	if err != nil {
		s.logger.Error("list appointments failed", "error", err)
		writeInternalError(w, "failed to list appointments")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"appointments": apts,
		"count":        len(apts),
	})
}

// handleUpdateAppointment moves an appointment to a new status.
func (s *Server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Status == "" {
		writeBadRequest(w, "status is required")
		return
	}

	status := appointments.Status(req.Status)
	if err := s.appointmentRepo.UpdateStatus(r.Context(), id, status); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			writeBadRequest(w, fmt.Sprintf("invalid status %q", req.Status))
		case errors.Is(err, appointments.ErrNotFound):
			writeNotFound(w, "appointment not found")
		default:
			s.logger.Error("update appointment failed", "id", id, "error", err)
			writeInternalError(w, "failed to update appointment")
		}
		return
	}

	apt, err := s.appointmentRepo.GetByID(r.Context(), id)
	if err != nil {
		s.logger.Error("reload appointment failed", "id", id, "error", err)
		writeInternalError(w, "failed to load appointment")
		return
	}

	s.logger.Info("appointment updated", "id", id, "status", status)

	if s.hub != nil {
		s.hub.Broadcast(eventAppointmentUpdated, apt)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"appointment": apt,
	})
}

// handleDeleteAppointment removes an appointment permanently.
func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.appointmentRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, appointments.ErrNotFound) {
			writeNotFound(w, "appointment not found")
			return
		}
		s.logger.Error("delete appointment failed", "id", id, "error", err)
		writeInternalError(w, "failed to delete appointment")
		return
	}

	s.logger.Info("appointment deleted", "id", id)

	if s.hub != nil {
		s.hub.Broadcast(eventAppointmentDeleted, map[string]string{"id": id})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "appointment deleted",
	})
}

// notifyBooking sends the booking confirmation mail without blocking
// the request. Failures are logged and otherwise ignored.
func (s *Server) notifyBooking(apt *appointments.Appointment) {
	if s.mailer == nil {
		return
	}

	to := apt.Email
	subject := "Appointment request received"
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your request for %q on %s.\n"+
			"You will hear from us once it is confirmed.\n",
		apt.Name, apt.Service, apt.RequestedAt.Format("Mon, 02 Jan 2006 15:04 MST"),
	)

	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			s.logger.Warn("booking notification failed", "id", apt.ID, "error", err)
		}
	}()
}
