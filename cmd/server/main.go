// Package main implements the entry point for the Noveltopia API
// server, the content-publishing backend handling user signup/login
// and book submissions.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/noveltopia/noveltopia-api/internal/config"
	"github.com/noveltopia/noveltopia-api/internal/platform/logger"
	"github.com/noveltopia/noveltopia-api/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to open database handle: %v", err)
	}

	// The listener starts regardless of database connectivity: a dead
	// database is logged here and surfaces as 500s from the handlers
	// until it recovers. Migrations only run once the database answers.
	if pingErr := pingDatabase(db, appLogger); pingErr != nil {
		appLogger.Error("Database unreachable at startup, serving anyway",
			"error", pingErr)
	} else if err := migrations.Up(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	app := newApplication(cfg, appLogger, db)

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
