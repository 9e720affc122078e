package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libris/catalog-api/internal/api/shared"
)

type decodeTarget struct {
	Title string `json:"title" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes a valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/books",
			strings.NewReader(`{"title":"Some Book"}`))

		var target decodeTarget
		require.NoError(t, shared.DecodeJSON(req, &target))
		assert.Equal(t, "Some Book", target.Title)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/books",
			strings.NewReader(`{"title":`))

		var target decodeTarget
		assert.Error(t, shared.DecodeJSON(req, &target))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid struct passes", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, shared.ValidateRequest(decodeTarget{Title: "Some Book"}))
	})

	t.Run("missing required field fails", func(t *testing.T) {
		t.Parallel()

		err := shared.ValidateRequest(decodeTarget{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title")
	})
}
