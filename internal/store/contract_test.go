package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// recordStore общий контракт всех реализаций хранилища
type recordStore interface {
	Insert(ctx context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error)
	FindByKey(ctx context.Context, key model.ShortKey) (model.URLRecord, error)
}

// runStoreContract прогоняет одинаковые проверки для любой реализации
func runStoreContract(t *testing.T, newStore func(t *testing.T) recordStore) {
	t.Run("insert then find", func(t *testing.T) {
		tests := []struct {
			name string
			key  model.ShortKey
			url  string
		}{
			{name: "Simple URL", key: "abc123", url: "https://example.com"},
			{name: "URL with path", key: "xyz987", url: "https://example.com/very/long/path/with/many/segments"},
			{name: "URL with query params", key: "qwer12", url: "https://example.com?param=value&other=test"},
			{name: "URL with unicode", key: "unic01", url: "http://example.com/путь"},
		}

		s := newStore(t)
		ctx := context.Background()

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec, err := s.Insert(ctx, tt.url, tt.key)
				require.NoError(t, err)
				assert.NotEmpty(t, rec.ID)
				assert.Equal(t, tt.key, rec.ShortKey)
				assert.Equal(t, tt.url, rec.OriginalURL)
				assert.False(t, rec.CreatedAt.IsZero())

				found, err := s.FindByKey(ctx, tt.key)
				require.NoError(t, err)
				assert.Equal(t, rec.ID, found.ID)
				assert.Equal(t, tt.url, found.OriginalURL)
				assert.Equal(t, tt.key, found.ShortKey)
				assert.WithinDuration(t, rec.CreatedAt, found.CreatedAt, 0)
			})
		}
	})

	t.Run("not found", func(t *testing.T) {
		s := newStore(t)

		_, err := s.FindByKey(context.Background(), "nokey1")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("duplicate key rejected", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first, err := s.Insert(ctx, "https://first.example.com", "dup123")
		require.NoError(t, err)

		_, err = s.Insert(ctx, "https://second.example.com", "dup123")
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.NotErrorIs(t, err, ErrNotFound)

		// Исходная запись не изменилась
		found, err := s.FindByKey(ctx, "dup123")
		require.NoError(t, err)
		assert.Equal(t, first.OriginalURL, found.OriginalURL)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("same URL under different keys", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Insert(ctx, "https://example.com", "same01")
		require.NoError(t, err)
		b, err := s.Insert(ctx, "https://example.com", "same02")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("concurrent inserts of one key", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		const writers = 16

		var (
			mu        sync.Mutex
			succeeded int
			conflicts int
		)

		var g errgroup.Group
		for i := 0; i < writers; i++ {
			g.Go(func() error {
				_, err := s.Insert(ctx, fmt.Sprintf("https://example.com/%d", i), "race01")
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case assert.ErrorIs(t, err, ErrAlreadyExists):
					conflicts++
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, writers-1, conflicts)
	})
}
