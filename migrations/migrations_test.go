package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libris/catalog-api/migrations"
)

// Every embedded migration must carry both goose direction markers so a
// partial file cannot slip into a release binary.
func TestEmbeddedMigrationsAreWellFormed(t *testing.T) {
	t.Parallel()

	entries, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries, "no migration files embedded")

	for _, name := range entries {
		raw, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)

		content := string(raw)
		assert.Contains(t, content, "-- +goose Up", "%s missing up marker", name)
		assert.Contains(t, content, "-- +goose Down", "%s missing down marker", name)
	}
}

func TestBooksTableMigrationConstraints(t *testing.T) {
	t.Parallel()

	raw, err := fs.ReadFile(migrations.FS, "20250301000001_create_books_table.sql")
	require.NoError(t, err)

	content := string(raw)
	for _, status := range []string{"'PENDING'", "'REJECTED'", "'APPROVED'"} {
		assert.Contains(t, content, status)
	}
	assert.True(t, strings.Contains(content, "subtitle TEXT NOT NULL DEFAULT ''"),
		"subtitle must default to empty string, not null")
}
