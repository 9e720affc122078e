// Package postgres contains the PostgreSQL implementations of the store
// interfaces, built on database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/libris/catalog-api/internal/domain"
	"github.com/libris/catalog-api/internal/platform/logger"
	"github.com/libris/catalog-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	pool   *sql.DB // nil when the store is bound to a transaction
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db *sql.DB, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		pool:   db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// WithinTx implements store.BookStore.WithinTx
// It opens a transaction, binds a copy of the store to it, and hands the
// copy to fn. When called on a store already bound to a transaction, fn
// simply joins the existing one.
func (s *PostgresBookStore) WithinTx(
	ctx context.Context,
	fn func(ctx context.Context, txStore store.BookStore) error,
) error {
	if s.pool == nil {
		return fn(ctx, s)
	}

	return store.RunInTransaction(ctx, s.pool, func(ctx context.Context, tx *sql.Tx) error {
		txStore := &PostgresBookStore{
			db:     tx,
			logger: s.logger,
		}
		return fn(ctx, txStore)
	})
}

// bookColumns is the column list shared by every SELECT in this file,
// in the order scanBook expects.
const bookColumns = "id, isbn, title, subtitle, copyright_year, status, created_at, updated_at"

// scanBook scans a single row into a domain.Book.
func scanBook(row interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var book domain.Book
	var status string

	err := row.Scan(
		&book.ID,
		&book.ISBN,
		&book.Title,
		&book.Subtitle,
		&book.CopyrightYear,
		&status,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	book.Status = domain.BookStatus(status)
	return &book, nil
}

// Create implements store.BookStore.Create
// It saves a new book to the database, handling domain validation.
// The database assigns the ID and both timestamps; the passed book is
// updated in place with the assigned values.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()),
			slog.String("title", book.Title))
		return err
	}

	query := `
		INSERT INTO books (isbn, title, subtitle, copyright_year, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		book.ISBN,
		book.Title,
		book.Subtitle,
		book.CopyrightYear,
		string(book.Status),
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)

	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("title", book.Title))
		return store.NewStoreError("book", "create", "insert failed", MapError(err))
	}

	log.Info("book created successfully",
		slog.Int64("book_id", book.ID),
		slog.String("status", string(book.Status)))
	return nil
}

// GetByID implements store.BookStore.GetByID
// It retrieves a book by its unique ID.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving book by ID", slog.Int64("book_id", id))

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	book, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return nil, MapError(err)
	}

	return book, nil
}

// GetAll implements store.BookStore.GetAll
// It retrieves every persisted book ordered by ID so repeated calls
// with no intervening mutation return equal sequences.
func (s *PostgresBookStore) GetAll(ctx context.Context) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving all books")

	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	books, err := s.queryBooks(ctx, query)
	if err != nil {
		return nil, err
	}

	log.Debug("retrieved all books", slog.Int("count", len(books)))
	return books, nil
}

// Update implements store.BookStore.Update
// It overwrites the mutable fields of an existing book and refreshes
// updated_at on the passed book.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("book_id", book.ID))
		return err
	}

	query := `
		UPDATE books
		SET isbn = $1, title = $2, subtitle = $3, copyright_year = $4, status = $5,
		    updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		book.ISBN,
		book.Title,
		book.Subtitle,
		book.CopyrightYear,
		string(book.Status),
		book.ID,
	).Scan(&book.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found for update", slog.Int64("book_id", book.ID))
			return store.ErrBookNotFound
		}
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", book.ID))
		return store.NewStoreError("book", "update", "update failed", MapError(err))
	}

	log.Info("book updated successfully",
		slog.Int64("book_id", book.ID),
		slog.String("status", string(book.Status)))
	return nil
}

// Delete implements store.BookStore.Delete
// It permanently removes a book from the store by its ID.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return store.NewStoreError("book", "delete", "delete failed", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("book not found for delete", slog.Int64("book_id", id))
		return store.ErrBookNotFound
	}

	log.Info("book deleted successfully", slog.Int64("book_id", id))
	return nil
}

// Search implements store.BookStore.Search
// It matches the query case-insensitively as a substring of either the
// title or the subtitle. Returns an empty slice if no books match.
func (s *PostgresBookStore) Search(ctx context.Context, query string) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("searching books", slog.String("query", query))

	sqlQuery := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE title ILIKE $1 OR subtitle ILIKE $1
		ORDER BY id
	`
	pattern := "%" + query + "%"

	books, err := s.queryBooks(ctx, sqlQuery, pattern)
	if err != nil {
		return nil, err
	}

	log.Debug("search completed",
		slog.String("query", query),
		slog.Int("count", len(books)))
	return books, nil
}

// queryBooks runs a multi-row query and scans every row into a book slice.
// Returns an empty slice instead of nil when no rows match.
func (s *PostgresBookStore) queryBooks(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query books", slog.String("error", err.Error()))
		return nil, store.NewStoreError("book", "query", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var books []*domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if books == nil {
		books = []*domain.Book{}
	}

	return books, nil
}
