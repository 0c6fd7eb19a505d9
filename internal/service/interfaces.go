package service

import (
	"context"

	"github.com/avc-dev/linkzip/internal/model"
)

//go:generate mockery --name URLRepository
//go:generate mockery --name Generator

// URLRepository определяет методы для работы с хранилищем URL
type URLRepository interface {
	// Exists сообщает, занят ли ключ
	Exists(ctx context.Context, key model.ShortKey) (bool, error)
	// CreateURL сохраняет запись
	// Возвращает store.ErrAlreadyExists если ключ занят на уровне хранилища
	CreateURL(ctx context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error)
}

// Generator источник ключей-кандидатов
type Generator interface {
	GenerateKey() (model.ShortKey, error)
}
