package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookStatus represents the lifecycle state of a catalog record.
type BookStatus string

// Possible book status values. Statuses are persisted as their
// canonical uppercase names.
const (
	BookStatusPending  BookStatus = "PENDING"
	BookStatusRejected BookStatus = "REJECTED"
	BookStatusApproved BookStatus = "APPROVED"
)

// Common validation errors for Book. Each wraps ErrValidation so
// callers can match the whole family with a single errors.Is check.
var (
	ErrEmptyBookISBN     = fmt.Errorf("%w: book ISBN cannot be empty", ErrValidation)
	ErrEmptyBookTitle    = fmt.Errorf("%w: book title cannot be empty", ErrValidation)
	ErrInvalidBookStatus = fmt.Errorf("%w: invalid book status", ErrValidation)
)

// Book represents a single book's catalog entry. ID and the two
// timestamps are owned by the store: ID is assigned on creation and
// immutable afterwards, CreatedAt is set once, and UpdatedAt is
// refreshed on every successful mutation.
type Book struct {
	ID            int64      `json:"id"`
	ISBN          string     `json:"isbn"`
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle"`
	CopyrightYear int        `json:"copyrightYear"`
	Status        BookStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// NewBook assembles an unpersisted Book from untrusted input. The
// subtitle defaults to the empty string, never null. The status is
// parsed case-insensitively into the closed enum.
// Returns an error if validation fails.
func NewBook(isbn, title, subtitle string, copyrightYear int, status string) (*Book, error) {
	parsed, err := ParseBookStatus(status)
	if err != nil {
		return nil, err
	}

	book := &Book{
		ISBN:          isbn,
		Title:         title,
		Subtitle:      subtitle,
		CopyrightYear: copyrightYear,
		Status:        parsed,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
// Returns an error if any field fails validation.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.ISBN) == "" {
		return ErrEmptyBookISBN
	}

	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyBookTitle
	}

	if !isValidBookStatus(b.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidBookStatus, b.Status)
	}

	return nil
}

// ParseBookStatus converts a raw string into a BookStatus,
// accepting any casing. Returns ErrInvalidBookStatus for values
// outside the closed set.
func ParseBookStatus(raw string) (BookStatus, error) {
	status := BookStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !isValidBookStatus(status) {
		return "", fmt.Errorf("%w: %q", ErrInvalidBookStatus, raw)
	}
	return status, nil
}

// isValidBookStatus checks if the given status is a valid BookStatus.
func isValidBookStatus(status BookStatus) bool {
	switch status {
	case BookStatusPending, BookStatusRejected, BookStatusApproved:
		return true
	default:
		return false
	}
}
