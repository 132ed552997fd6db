// appointd - appointment booking service
//
// This is the main entry point for the appointd application: a small
// self-hosted booking backend with a single administrator account, a
// credential-gated admin API, and an embedded admin console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/appointd/appointd/migrations"

	"github.com/appointd/appointd/internal/api"
	"github.com/appointd/appointd/internal/appointments"
	"github.com/appointd/appointd/internal/auth"
	"github.com/appointd/appointd/internal/infrastructure/config"
	"github.com/appointd/appointd/internal/infrastructure/database"
	"github.com/appointd/appointd/internal/infrastructure/logging"
	"github.com/appointd/appointd/internal/mail"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting appointd",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	adminRepo := auth.NewAdminRepository(db.DB)
	appointmentRepo := appointments.NewRepository(db.DB)

	// Outbound mail is optional. Without it bookings still work, the
	// confirmation mail is simply skipped.
	var mailer mail.Sender
	if cfg.Mail.Enabled {
		mailer = mail.New(cfg.Mail)
		log.Info("mail enabled", "host", cfg.Mail.Host, "from", cfg.Mail.From)
	} else {
		log.Info("mail disabled")
	}

	server, err := api.New(api.Deps{
		Config:          cfg.Server,
		Security:        cfg.Security,
		Logger:          log.With("component", "api"),
		AdminRepo:       adminRepo,
		AppointmentRepo: appointmentRepo,
		Mailer:          mailer,
		WebUIDir:        cfg.WebUI.Dir,
		Version:         version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	// Deferred Close() calls run in reverse order: API server, database.

	log.Info("appointd stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses APPOINTD_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("APPOINTD_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
