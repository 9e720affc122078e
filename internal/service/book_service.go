package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/libris/catalog-api/internal/domain"
	"github.com/libris/catalog-api/internal/store"
)

// CreateBookInput carries the caller-supplied fields for a new book.
// Subtitle is optional and defaults to the empty string.
type CreateBookInput struct {
	ISBN          string
	Title         string
	Subtitle      string
	CopyrightYear int
	Status        string
}

// UpdateBookInput carries a partial update for an existing book.
// Nil fields are left unchanged; non-nil fields replace the stored value.
type UpdateBookInput struct {
	ID            int64
	ISBN          *string
	Title         *string
	Subtitle      *string
	CopyrightYear *int
	Status        *string
}

// BookService provides book catalog operations.
//
// Operations that accept an ID take it as the raw string from the request
// so that format errors surface as InvalidIDError rather than being
// handled ad hoc at each call site.
type BookService interface {
	// CreateBook validates the input and persists a new book record.
	CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error)

	// GetBook retrieves a single book by its raw string ID.
	GetBook(ctx context.Context, rawID string) (*domain.Book, error)

	// GetAllBooks retrieves every book in the catalog.
	GetAllBooks(ctx context.Context) ([]*domain.Book, error)

	// UpdateBook applies a partial update to an existing book.
	UpdateBook(ctx context.Context, input UpdateBookInput) (*domain.Book, error)

	// DeleteBook permanently removes a book by its raw string ID.
	DeleteBook(ctx context.Context, rawID string) error

	// SearchBooks retrieves books whose title or subtitle contains the
	// query, compared case-insensitively.
	SearchBooks(ctx context.Context, query string) ([]*domain.Book, error)
}

// bookServiceImpl implements the BookService interface
type bookServiceImpl struct {
	bookStore store.BookStore
	logger    *slog.Logger
}

// NewBookService creates a new BookService.
// It returns an error if any of the required dependencies are nil.
func NewBookService(bookStore store.BookStore, logger *slog.Logger) (BookService, error) {
	if bookStore == nil {
		return nil, &BookServiceError{
			Operation: "create_service",
			Message:   "bookStore cannot be nil",
			Err:       nil,
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &bookServiceImpl{
		bookStore: bookStore,
		logger:    logger.With("component", "book_service"),
	}, nil
}

// parseBookID converts a raw request ID into the numeric form the store
// uses. Anything that does not parse as a positive-width integer is an
// InvalidIDError carrying the original value.
func parseBookID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &InvalidIDError{Value: raw}
	}
	return id, nil
}

// CreateBook validates the input and persists a new book record inside a
// single transaction.
func (s *bookServiceImpl) CreateBook(
	ctx context.Context,
	input CreateBookInput,
) (*domain.Book, error) {
	s.logger.Info("creating new book", "title", input.Title)

	book, err := domain.NewBook(input.ISBN, input.Title, input.Subtitle, input.CopyrightYear, input.Status)
	if err != nil {
		s.logger.Warn("book validation failed on create",
			"error", err,
			"title", input.Title)
		if errors.Is(err, domain.ErrInvalidBookStatus) {
			return nil, &InvalidRequestError{Message: "Invalid status value: " + input.Status}
		}
		return nil, &InvalidRequestError{Message: err.Error()}
	}

	err = s.bookStore.WithinTx(ctx, func(ctx context.Context, txStore store.BookStore) error {
		return txStore.Create(ctx, book)
	})
	if err != nil {
		s.logger.Error("failed to create book",
			"error", err,
			"title", input.Title)
		return nil, NewBookServiceError("create_book", "failed to save book", err)
	}

	s.logger.Info("book created successfully",
		"book_id", book.ID,
		"status", book.Status)
	return book, nil
}

// GetBook retrieves a single book by its raw string ID.
func (s *bookServiceImpl) GetBook(ctx context.Context, rawID string) (*domain.Book, error) {
	id, err := parseBookID(rawID)
	if err != nil {
		s.logger.Warn("invalid book ID", "raw_id", rawID)
		return nil, err
	}

	s.logger.Debug("fetching book", "book_id", id)

	var book *domain.Book
	err = s.bookStore.WithinTx(ctx, func(ctx context.Context, txStore store.BookStore) error {
		var err error
		book, err = txStore.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			s.logger.Debug("book not found", "book_id", id)
			return nil, &BookNotFoundError{ID: id}
		}
		s.logger.Error("failed to retrieve book",
			"error", err,
			"book_id", id)
		return nil, NewBookServiceError("get_book", "failed to retrieve book", err)
	}

	return book, nil
}

// GetAllBooks retrieves every book in the catalog.
func (s *bookServiceImpl) GetAllBooks(ctx context.Context) ([]*domain.Book, error) {
	s.logger.Debug("fetching all books")

	var books []*domain.Book
	err := s.bookStore.WithinTx(ctx, func(ctx context.Context, txStore store.BookStore) error {
		var err error
		books, err = txStore.GetAll(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("failed to retrieve books", "error", err)
		return nil, NewBookServiceError("get_all_books", "failed to retrieve books", err)
	}

	return books, nil
}

// UpdateBook loads the targeted book, applies the non-nil input fields,
// and saves the result. The read and the write share one transaction so
// concurrent updates cannot interleave between them.
func (s *bookServiceImpl) UpdateBook(
	ctx context.Context,
	input UpdateBookInput,
) (*domain.Book, error) {
	s.logger.Info("updating book", "book_id", input.ID)

	var updated *domain.Book
	err := s.bookStore.WithinTx(ctx, func(ctx context.Context, txStore store.BookStore) error {
		book, err := txStore.GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, store.ErrBookNotFound) {
				return &BookNotFoundError{ID: input.ID}
			}
			return NewBookServiceError("update_book", "failed to retrieve book", err)
		}

		if err := applyBookUpdate(book, input); err != nil {
			return err
		}

		if err := txStore.Update(ctx, book); err != nil {
			return NewBookServiceError("update_book", "failed to save book", err)
		}

		updated = book
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrBookNotFound) {
			s.logger.Warn("book update rejected",
				"error", err,
				"book_id", input.ID)
		} else {
			s.logger.Error("failed to update book",
				"error", err,
				"book_id", input.ID)
		}
		return nil, err
	}

	s.logger.Info("book updated successfully",
		"book_id", updated.ID,
		"status", updated.Status)
	return updated, nil
}

// applyBookUpdate merges the non-nil input fields into book. A provided
// field must still satisfy the domain rules, so an explicit blank title
// or ISBN is rejected rather than silently kept.
func applyBookUpdate(book *domain.Book, input UpdateBookInput) error {
	if input.ISBN != nil {
		if strings.TrimSpace(*input.ISBN) == "" {
			return &InvalidRequestError{Message: "ISBN cannot be blank"}
		}
		book.ISBN = *input.ISBN
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return &InvalidRequestError{Message: "Title cannot be blank"}
		}
		book.Title = *input.Title
	}
	if input.Subtitle != nil {
		book.Subtitle = *input.Subtitle
	}
	if input.CopyrightYear != nil {
		book.CopyrightYear = *input.CopyrightYear
	}
	if input.Status != nil {
		status, err := domain.ParseBookStatus(*input.Status)
		if err != nil {
			return &InvalidRequestError{Message: "Invalid status value: " + *input.Status}
		}
		book.Status = status
	}
	return nil
}

// DeleteBook permanently removes a book by its raw string ID.
func (s *bookServiceImpl) DeleteBook(ctx context.Context, rawID string) error {
	id, err := parseBookID(rawID)
	if err != nil {
		s.logger.Warn("invalid book ID", "raw_id", rawID)
		return err
	}

	s.logger.Info("deleting book", "book_id", id)

	err = s.bookStore.WithinTx(ctx, func(ctx context.Context, txStore store.BookStore) error {
		return txStore.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			s.logger.Debug("book not found for delete", "book_id", id)
			return &BookNotFoundError{ID: id}
		}
		s.logger.Error("failed to delete book",
			"error", err,
			"book_id", id)
		return NewBookServiceError("delete_book", "failed to delete book", err)
	}

	s.logger.Info("book deleted successfully", "book_id", id)
	return nil
}

// SearchBooks retrieves books matching the query. A blank query is
// rejected here as well as at the API layer so the invariant holds for
// any caller of the service.
func (s *bookServiceImpl) SearchBooks(ctx context.Context, query string) ([]*domain.Book, error) {
	if strings.TrimSpace(query) == "" {
		s.logger.Warn("blank search query rejected")
		return nil, &InvalidRequestError{Message: "Query parameter is required"}
	}

	s.logger.Debug("searching books", "query", query)

	var books []*domain.Book
	err := s.bookStore.WithinTx(ctx, func(ctx context.Context, txStore store.BookStore) error {
		var err error
		books, err = txStore.Search(ctx, query)
		return err
	})
	if err != nil {
		s.logger.Error("failed to search books",
			"error", err,
			"query", query)
		return nil, NewBookServiceError("search_books", "failed to search books", err)
	}

	s.logger.Debug("search completed",
		"query", query,
		"count", len(books))
	return books, nil
}
