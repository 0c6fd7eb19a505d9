package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkzip/internal/config/db"
	"github.com/avc-dev/linkzip/internal/handler"
	"github.com/avc-dev/linkzip/internal/migrations"
	"github.com/avc-dev/linkzip/internal/repository"
	"github.com/avc-dev/linkzip/internal/service"
	"github.com/avc-dev/linkzip/internal/store"
	"github.com/avc-dev/linkzip/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) error {
	storage, err := a.initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	a.handler = newHandler(storage, service.RetryPolicy{MaxAttempts: a.config.Retry.MaxAttempts}, a.logger)

	if a.config.Retry.MaxAttempts == 0 {
		a.logger.Info("Key generation retries are unbounded")
	} else {
		a.logger.Info("Key generation retries are bounded", zap.Int("max_attempts", a.config.Retry.MaxAttempts))
	}

	return nil
}

// newHandler собирает цепочку repository -> service -> usecase -> handler над хранилищем
func newHandler(storage repository.Store, retry service.RetryPolicy, logger *zap.Logger) *handler.Handler {
	repo := repository.New(storage)
	urlService := service.NewURLService(repo, retry, logger)
	urlUsecase := usecase.NewURLUsecase(repo, urlService, logger)

	return handler.New(urlUsecase, logger)
}

// initStorage создает хранилище на основе конфигурации.
// Приоритет: PostgreSQL, SQLite, файл, память.
func (a *App) initStorage(ctx context.Context) (repository.Store, error) {
	cfg := a.config

	switch {
	case cfg.DatabaseDSN != "":
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		if err := migrations.NewMigrator(database.DB(), a.logger).RunUp(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		a.logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(database), nil

	case cfg.SQLitePath != "":
		sqliteStore, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite store: %w", err)
		}
		a.closer = sqliteStore

		a.logger.Info("Using SQLite storage", zap.String("path", cfg.SQLitePath))
		return sqliteStore, nil

	case cfg.FileStoragePath != "":
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}

		a.logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil

	default:
		a.logger.Info("Using in-memory storage")
		return store.NewStore(), nil
	}
}
