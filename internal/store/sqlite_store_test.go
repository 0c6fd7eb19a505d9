package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T, path string) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestSQLiteStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) recordStore {
		return newTestSQLiteStore(t, filepath.Join(t.TempDir(), "linkzip.db"))
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkzip.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	rec, err := first.Insert(ctx, "https://www.example.com", "aB3xY9")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := newTestSQLiteStore(t, path)

	found, err := second.FindByKey(ctx, "aB3xY9")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)
	assert.Equal(t, rec.OriginalURL, found.OriginalURL)
	assert.True(t, rec.CreatedAt.Equal(found.CreatedAt))

	_, err = second.Insert(ctx, "https://other.example.com", "aB3xY9")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
