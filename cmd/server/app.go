package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/noveltopia/noveltopia-api/internal/config"
	"github.com/noveltopia/noveltopia-api/internal/platform/postgres"
	"github.com/noveltopia/noveltopia-api/internal/service/auth"
	"github.com/noveltopia/noveltopia-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	bookStore store.BookStore

	// Password services
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all
// dependencies initialized. It accepts the core dependencies
// (configuration, logger, database handle) that must be established
// before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.passwordHasher = auth.NewBcryptHasher(auth.HashCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.bookStore = postgres.NewPostgresBookStore(db, logger)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters
// problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
