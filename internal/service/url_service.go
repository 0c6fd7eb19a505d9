package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/avc-dev/linkzip/internal/store"
	"go.uber.org/zap"
)

// URLService содержит бизнес-логику выдачи коротких ключей
type URLService struct {
	repo          URLRepository
	codeGenerator Generator
	retry         RetryPolicy
	logger        *zap.Logger
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo URLRepository, retry RetryPolicy, logger *zap.Logger) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: NewKeyGenerator(),
		retry:         retry,
		logger:        logger,
	}
}

// CreateShortURL подбирает свободный ключ и сохраняет запись.
// Ключ сначала проверяется через Exists, затем вставляется; если между проверкой
// и вставкой ключ занял конкурентный запрос, хранилище вернёт ErrAlreadyExists
// и попытка повторится с новым ключом. При RetryPolicy без ограничения цикл
// завершается только успехом, ошибкой хранилища или отменой ctx.
func (s *URLService) CreateShortURL(ctx context.Context, originalURL string) (model.URLRecord, error) {
	rec, err := Retry(ctx, s.retry, func(ctx context.Context) (model.URLRecord, error) {
		return s.tryCreate(ctx, originalURL)
	}, isKeyConflict)
	if err != nil {
		return model.URLRecord{}, fmt.Errorf("failed to create short URL: %w", err)
	}

	return rec, nil
}

func (s *URLService) tryCreate(ctx context.Context, originalURL string) (model.URLRecord, error) {
	key, err := s.codeGenerator.GenerateKey()
	if err != nil {
		return model.URLRecord{}, err
	}

	exists, err := s.repo.Exists(ctx, key)
	if err != nil {
		return model.URLRecord{}, err
	}
	if exists {
		s.logger.Debug("generated key is taken", zap.String("short_key", key.String()))
		return model.URLRecord{}, fmt.Errorf("key %s: %w", key, errKeyTaken)
	}

	rec, err := s.repo.CreateURL(ctx, originalURL, key)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			s.logger.Info("key conflict on insert, retrying", zap.String("short_key", key.String()))
		}
		return model.URLRecord{}, err
	}

	return rec, nil
}

func isKeyConflict(err error) bool {
	return errors.Is(err, errKeyTaken) || errors.Is(err, store.ErrAlreadyExists)
}
