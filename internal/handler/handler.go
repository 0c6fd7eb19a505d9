package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/avc-dev/linkzip/internal/usecase"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	invalidURLDetail     = "Invalid URL format. Must start with http:// or https://"
	notFoundDetail       = "Short URL not found"
	internalErrorDetail  = "Internal Server Error"
	invalidRequestDetail = "Request body must be a JSON object with a string field original_url"
)

//go:generate mockery --name URLUsecase

// URLUsecase определяет сценарии, которые обслуживает HTTP слой
type URLUsecase interface {
	CreateShortURL(ctx context.Context, originalURL string) (model.URLRecord, error)
	GetOriginalURL(ctx context.Context, key string) (string, error)
	GetURLInfo(ctx context.Context, key string) (model.URLRecord, error)
}

// Handler обрабатывает HTTP запросы API коротких ссылок
type Handler struct {
	usecase  URLUsecase
	logger   *zap.Logger
	validate *validator.Validate
}

// New создает новый Handler
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase:  usecase,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// handleError переводит ошибку usecase в HTTP ответ
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidURL):
		writeDetail(w, r, http.StatusBadRequest, invalidURLDetail)
	case errors.Is(err, usecase.ErrURLNotFound):
		writeDetail(w, r, http.StatusNotFound, notFoundDetail)
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
		writeDetail(w, r, http.StatusInternalServerError, internalErrorDetail)
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, model.ErrorResponse{Detail: detail})
}
