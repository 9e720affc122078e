package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/libris/catalog-api/internal/api/shared"
	"github.com/libris/catalog-api/internal/service"
)

// BookHandler handles book-related HTTP requests
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// CreateBook handles POST /api/books requests
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), req.toCreateInput())
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to create book")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, bookToResponse(book))
}

// GetBook handles GET /api/books/{id} requests
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to get book")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, bookToResponse(book))
}

// GetAllBooks handles GET /api/books requests
func (h *BookHandler) GetAllBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.GetAllBooks(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to get books")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, booksToResponse(books))
}

// UpdateBook handles PATCH /api/books requests. The target ID travels in
// the request body, not the path.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), req.toUpdateInput())
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to update book")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, bookToResponse(book))
}

// DeleteBook handles DELETE /api/books/{id} requests
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.bookService.DeleteBook(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "Failed to delete book")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessEnvelopeWithMessage("Book deleted successfully", nil))
}

// SearchBooks handles GET /api/books/search?query=term requests
func (h *BookHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Query parameter is required")
		return
	}

	books, err := h.bookService.SearchBooks(r.Context(), query)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to search books")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, booksToResponse(books))
}

// respondServiceError maps a service error to a status code and a safe
// message. Unexpected errors fall back to fallbackMessage so internals
// never leak to the client.
func (h *BookHandler) respondServiceError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	fallbackMessage string,
) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
