package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libris/catalog-api/internal/api"
	"github.com/libris/catalog-api/internal/service"
	"github.com/libris/catalog-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "typed not found",
			err:  &service.BookNotFoundError{ID: 1},
			want: http.StatusNotFound,
		},
		{
			name: "store not found",
			err:  store.ErrBookNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "invalid ID",
			err:  &service.InvalidIDError{Value: "abc"},
			want: http.StatusBadRequest,
		},
		{
			name: "invalid request",
			err:  &service.InvalidRequestError{Message: "Title cannot be blank"},
			want: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			err:  store.ErrDuplicate,
			want: http.StatusConflict,
		},
		{
			name: "storage failure",
			err:  service.NewBookServiceError("get_book", "boom", errors.New("disk on fire")),
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error",
			err:  errors.New("anything"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("typed errors surface their message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Book not found with id: 42",
			api.GetSafeErrorMessage(&service.BookNotFoundError{ID: 42}))
		assert.Equal(t, "Invalid book ID format: xyz",
			api.GetSafeErrorMessage(&service.InvalidIDError{Value: "xyz"}))
		assert.Equal(t, "Query parameter is required",
			api.GetSafeErrorMessage(&service.InvalidRequestError{Message: "Query parameter is required"}))
	})

	t.Run("unknown errors get a generic message", func(t *testing.T) {
		t.Parallel()

		msg := api.GetSafeErrorMessage(errors.New("pq: connection refused to db at 10.0.0.5"))
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("nil error gets a generic message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	type req struct {
		Title string `validate:"required"`
	}

	t.Run("extracts field and tag", func(t *testing.T) {
		t.Parallel()

		err := validator.New().Struct(req{})
		require.Error(t, err)

		msg := api.SanitizeValidationError(err)
		assert.Equal(t, "Invalid Title: required field", msg)
	})

	t.Run("non-validation errors fall back", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Validation error",
			api.SanitizeValidationError(errors.New("something else")))
	})
}
