// Package api contains the HTTP handlers, request/response models, and
// the error-to-status mapping for the catalog endpoints.
package api

import (
	"time"

	"github.com/libris/catalog-api/internal/domain"
	"github.com/libris/catalog-api/internal/service"
)

// CreateBookRequest represents the request body for creating a new book.
// Subtitle is optional; everything else is required.
type CreateBookRequest struct {
	ISBN          string `json:"isbn"          validate:"required"`
	Title         string `json:"title"         validate:"required"`
	Subtitle      string `json:"subtitle"`
	CopyrightYear *int   `json:"copyrightYear" validate:"required"`
	Status        string `json:"status"        validate:"required"`
}

// UpdateBookRequest represents the request body for a partial book update.
// The ID selects the target; nil fields are left unchanged.
type UpdateBookRequest struct {
	ID            *int64  `json:"id" validate:"required"`
	ISBN          *string `json:"isbn"`
	Title         *string `json:"title"`
	Subtitle      *string `json:"subtitle"`
	CopyrightYear *int    `json:"copyrightYear"`
	Status        *string `json:"status"`
}

// BookResponse represents the response data for a book
type BookResponse struct {
	ID            int64     `json:"id"`
	ISBN          string    `json:"isbn"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	CopyrightYear int       `json:"copyrightYear"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// bookToResponse converts a domain.Book to a BookResponse
func bookToResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:            book.ID,
		ISBN:          book.ISBN,
		Title:         book.Title,
		Subtitle:      book.Subtitle,
		CopyrightYear: book.CopyrightYear,
		Status:        string(book.Status),
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}

// booksToResponse converts a slice of books, returning an empty slice
// rather than nil so the JSON data field is always an array.
func booksToResponse(books []*domain.Book) []BookResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, bookToResponse(book))
	}
	return responses
}

// toCreateInput converts the request body into the service input type.
func (r CreateBookRequest) toCreateInput() service.CreateBookInput {
	year := 0
	if r.CopyrightYear != nil {
		year = *r.CopyrightYear
	}
	return service.CreateBookInput{
		ISBN:          r.ISBN,
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		CopyrightYear: year,
		Status:        r.Status,
	}
}

// toUpdateInput converts the request body into the service input type.
func (r UpdateBookRequest) toUpdateInput() service.UpdateBookInput {
	var id int64
	if r.ID != nil {
		id = *r.ID
	}
	return service.UpdateBookInput{
		ID:            id,
		ISBN:          r.ISBN,
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		CopyrightYear: r.CopyrightYear,
		Status:        r.Status,
	}
}
