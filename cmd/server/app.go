package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/libris/catalog-api/internal/config"
	"github.com/libris/catalog-api/internal/platform/postgres"
	"github.com/libris/catalog-api/internal/service"
)

// application holds the server's wired dependencies. Everything hangs
// off this struct so the router and server setup stay free of global
// state.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	bookStore   *postgres.PostgresBookStore
	bookService service.BookService
}

// newApplication wires the store and service layers on top of an
// established database connection.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	bookStore := postgres.NewPostgresBookStore(db, logger)

	bookService, err := service.NewBookService(bookStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create book service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		bookStore:   bookStore,
		bookService: bookService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
