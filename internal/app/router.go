package app

import (
	"github.com/avc-dev/linkzip/internal/handler"
	"github.com/avc-dev/linkzip/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения.
// API маршруты регистрируются раньше статики, поэтому /{short_key} перехватывает
// все одно-сегментные пути.
func newRouter(h *handler.Handler, logger *zap.Logger, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.GzipMiddleware(logger))

	// Routes
	r.Post("/api/urls", h.CreateURL)
	r.Get("/api/info/{"+handler.ShortKeyParam+"}", h.GetURLInfo)
	r.Get("/{"+handler.ShortKeyParam+"}", h.Redirect)

	// Frontend
	r.Handle("/*", handler.Static(staticDir, logger))

	return r
}
