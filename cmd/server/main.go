// Package main implements the entry point for the catalog API server,
// which manages book records and their review lifecycle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/libris/catalog-api/internal/config"
	"github.com/libris/catalog-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires dependencies, and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	// An explicit migration command runs and exits without serving.
	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Error("failed to close database connection", "error", err)
			}
		}()
		return runMigrations(db, migrateCmd)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(db, "up"); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := context.Background()

	if cfg.Database.Seed {
		if err := seedBooks(ctx, app.bookStore, appLogger); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}
