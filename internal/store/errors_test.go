package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libris/catalog-api/internal/store"
)

func TestErrBookNotFoundWrapsErrNotFound(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrBookNotFound, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(store.ErrBookNotFound))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicate))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("formats with wrapped error", func(t *testing.T) {
		t.Parallel()

		inner := errors.New("connection refused")
		err := store.NewStoreError("book", "create", "insert failed", inner)

		assert.Equal(t, "create operation on book failed: insert failed: connection refused", err.Error())
		assert.ErrorIs(t, err, inner)
	})

	t.Run("formats without wrapped error", func(t *testing.T) {
		t.Parallel()

		err := store.NewStoreError("book", "delete", "no target", nil)

		assert.Equal(t, "delete operation on book failed: no target", err.Error())
	})

	t.Run("sentinels remain visible through the wrapper", func(t *testing.T) {
		t.Parallel()

		err := store.NewStoreError("book", "query", "query failed", store.ErrDuplicate)

		assert.ErrorIs(t, err, store.ErrDuplicate)
		assert.False(t, store.IsNotFoundError(err))
	})
}
