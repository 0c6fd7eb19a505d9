package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/avc-dev/linkzip/internal/store"
)

// Exists проверяет существование ключа в хранилище
// Возвращает true если ключ занят, false если ключ свободен
// Возвращает ошибку только в случае проблем с хранилищем (не "not found")
func (r *Repository) Exists(ctx context.Context, key model.ShortKey) (bool, error) {
	_, err := r.underlying.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check key existence: %w", err)
	}

	return true, nil
}
