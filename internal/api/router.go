package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appointd/appointd/internal/webui"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Public booking endpoint
		r.Post("/appointments", s.handleCreateAppointment)

		r.Route("/admin", func(r chi.Router) {
			// Bootstrap and login (no auth required)
			r.Get("/setup-status", s.handleSetupStatus)
			r.Post("/setup", s.handleSetup)
			r.Post("/login", s.handleLogin)

			// Live feed (auth via single-use ticket, validated in handler)
			r.Get("/ws", s.handleWebSocket)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)

				r.Get("/verify", s.handleVerify)
				r.Post("/ws-ticket", s.handleWSTicket)

				r.Route("/appointments", func(r chi.Router) {
					r.Get("/", s.handleListAppointments)
					r.Patch("/{id}", s.handleUpdateAppointment)
					r.Delete("/{id}", s.handleDeleteAppointment)
				})
			})
		})
	})

	// Admin web UI (embedded via go:embed, SPA fallback)
	r.Handle("/*", webui.Handler(s.webUIDir))

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
