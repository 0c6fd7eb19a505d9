package usecase

import (
	"context"

	"github.com/avc-dev/linkzip/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name URLReader
//go:generate mockery --name URLService

// URLReader определяет чтение записей из хранилища
type URLReader interface {
	GetURLByKey(ctx context.Context, key model.ShortKey) (model.URLRecord, error)
}

// URLService определяет интерфейс сервиса выдачи коротких ключей
type URLService interface {
	CreateShortURL(ctx context.Context, originalURL string) (model.URLRecord, error)
}

// URLUsecase содержит сценарии создания и разрешения коротких ссылок
type URLUsecase struct {
	repo    URLReader
	service URLService
	logger  *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLReader, service URLService, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:    repo,
		service: service,
		logger:  logger,
	}
}
