package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkzip/internal/model"
)

// Store хранилище записей с уникальностью short_key на уровне хранения
type Store interface {
	Insert(ctx context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error)
	FindByKey(ctx context.Context, key model.ShortKey) (model.URLRecord, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// CreateURL сохраняет новую запись под ключом key
func (r *Repository) CreateURL(ctx context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error) {
	rec, err := r.underlying.Insert(ctx, originalURL, key)
	if err != nil {
		return model.URLRecord{}, fmt.Errorf("failed to create URL: %w", err)
	}

	return rec, nil
}

func (r *Repository) GetURLByKey(ctx context.Context, key model.ShortKey) (model.URLRecord, error) {
	rec, err := r.underlying.FindByKey(ctx, key)
	if err != nil {
		return model.URLRecord{}, fmt.Errorf("failed to get URL by key: %w", err)
	}

	return rec, nil
}
