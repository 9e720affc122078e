package store

import (
	"context"

	"github.com/libris/catalog-api/internal/domain"
)

// BookStore defines the interface for book record persistence.
//
// Implementations map database failures to the sentinel errors in this
// package where a specific condition applies and otherwise return the
// underlying storage error unchanged.
type BookStore interface {
	// WithinTx executes fn against a BookStore bound to a single
	// transaction. The transaction is committed if fn returns nil and
	// rolled back otherwise. Callers compose multi-step operations
	// (e.g. read-modify-write updates) through this method so the
	// whole operation shares one transaction boundary.
	WithinTx(ctx context.Context, fn func(ctx context.Context, txStore BookStore) error) error

	// Create saves a new book to the store. The store assigns the ID
	// and both timestamps; the passed book is updated in place with
	// the assigned values.
	// The book must be valid according to domain validation rules.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// GetAll retrieves every persisted book in stable ID order.
	// Returns an empty slice, not an error, when the store is empty.
	GetAll(ctx context.Context) ([]*domain.Book, error)

	// Update overwrites an existing book's mutable fields and
	// refreshes UpdatedAt on the passed book.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book from the store by its ID. Deletion is
	// final; there is no soft delete.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int64) error

	// Search retrieves all books whose title or subtitle contains the
	// given substring, compared case-insensitively. Order is whatever
	// the store returns; no ranking is applied. Returns an empty
	// slice, not an error, when nothing matches.
	Search(ctx context.Context, query string) ([]*domain.Book, error)
}
