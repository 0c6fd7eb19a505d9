package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc-dev/linkzip/internal/model"
	"go.uber.org/zap"
)

var allowedSchemes = []string{"http://", "https://"}

// ValidateURL проверяет, что URL начинается с http:// или https://.
// Сравнение побайтовое, без нормализации.
func ValidateURL(originalURL string) error {
	for _, prefix := range allowedSchemes {
		if strings.HasPrefix(originalURL, prefix) {
			return nil
		}
	}

	return ErrInvalidURL
}

// CreateShortURL валидирует URL и создаёт для него запись с новым коротким ключом.
// Невалидный URL отклоняется до генерации ключа и обращения к хранилищу.
func (u *URLUsecase) CreateShortURL(ctx context.Context, originalURL string) (model.URLRecord, error) {
	if err := ValidateURL(originalURL); err != nil {
		u.logger.Debug("rejected URL", zap.String("original_url", originalURL))
		return model.URLRecord{}, err
	}

	rec, err := u.service.CreateShortURL(ctx, originalURL)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", originalURL),
			zap.Error(err),
		)
		return model.URLRecord{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("short URL created",
		zap.String("short_key", rec.ShortKey.String()),
		zap.String("id", rec.ID),
	)

	return rec, nil
}
