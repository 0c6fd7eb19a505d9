package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/avc-dev/linkzip/internal/config"
	"github.com/avc-dev/linkzip/internal/config/db"
	"github.com/avc-dev/linkzip/internal/handler"
	"github.com/avc-dev/linkzip/internal/logger"
	"go.uber.org/zap"
)

// App представляет приложение LinkZip
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	dbPool  db.Database
	closer  io.Closer
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: log,
	}

	if err := app.initDependencies(ctx); err != nil {
		app.Close()
		log.Sync()
		return nil, err
	}

	return app, nil
}

// Run запускает приложение и блокируется до SIGINT/SIGTERM
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает соединения с хранилищем
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("Database connection closed")
	}

	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Error("Failed to close storage", zap.Error(err))
		}
	}
}
