package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/avc-dev/linkzip/internal/store"
	"go.uber.org/zap"
)

// GetOriginalURL получает оригинальный URL по короткому ключу
func (u *URLUsecase) GetOriginalURL(ctx context.Context, key string) (string, error) {
	rec, err := u.GetURLInfo(ctx, key)
	if err != nil {
		return "", err
	}

	return rec.OriginalURL, nil
}

// GetURLInfo получает запись по короткому ключу без её изменения
func (u *URLUsecase) GetURLInfo(ctx context.Context, key string) (model.URLRecord, error) {
	rec, err := u.repo.GetURLByKey(ctx, model.ShortKey(key))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			u.logger.Debug("short key not found", zap.String("short_key", key))
			return model.URLRecord{}, fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}

		u.logger.Error("failed to get URL by key",
			zap.String("short_key", key),
			zap.Error(err),
		)
		return model.URLRecord{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return rec, nil
}
