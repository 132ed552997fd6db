package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/appointd/appointd/internal/appointments"
	"github.com/appointd/appointd/internal/auth"
	"github.com/appointd/appointd/internal/infrastructure/config"
	"github.com/appointd/appointd/internal/infrastructure/logging"
	"github.com/appointd/appointd/internal/mail"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight
// requests to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config          config.ServerConfig
	Security        config.SecurityConfig
	Logger          *logging.Logger
	AdminRepo       auth.AdminRepository
	AppointmentRepo appointments.Repository
	Mailer          mail.Sender // optional; nil disables booking notifications
	WebUIDir        string      // optional; serve UI from filesystem instead of embed
	Version         string
}

// Server is the HTTP server for appointd.
//
// It manages the HTTP listener, routes, middleware, and the live-feed
// hub. The server is created with New() and started with Start().
type Server struct {
	cfg             config.ServerConfig
	secCfg          config.SecurityConfig
	logger          *logging.Logger
	adminRepo       auth.AdminRepository
	appointmentRepo appointments.Repository
	mailer          mail.Sender
	webUIDir        string
	version         string
	server          *http.Server
	hub             *Hub
	tickets         *ticketStore
	cancel          context.CancelFunc // cancels background goroutines on Close()
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.AdminRepo == nil {
		return nil, fmt.Errorf("admin repository is required")
	}
	if deps.AppointmentRepo == nil {
		return nil, fmt.Errorf("appointment repository is required")
	}
	if deps.Security.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &Server{
		cfg:             deps.Config,
		secCfg:          deps.Security,
		logger:          deps.Logger,
		adminRepo:       deps.AdminRepo,
		appointmentRepo: deps.AppointmentRepo,
		mailer:          deps.Mailer,
		webUIDir:        deps.WebUIDir,
		version:         deps.Version,
		tickets:         newTicketStore(),
	}, nil
}

// Start begins listening for HTTP connections.
//
// It builds the router, starts the live-feed hub and ticket cleanup in
// background goroutines, and launches the HTTP listener. The server can
// be stopped with Close().
func (s *Server) Start(ctx context.Context) error {
	// Internal context so Close() can stop background goroutines
	// independently of the parent context.
	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(ctx)

	if s.hub == nil {
		s.hub = NewHub(s.logger)
		go s.hub.Run(srvCtx)
	}

	go s.tickets.cleanLoop(srvCtx)

	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS",
				"address", s.server.Addr,
				"cert", s.cfg.TLS.CertFile,
			)
			err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", s.server.Addr)
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	// Stop background goroutines (hub, ticket cleanup)
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
