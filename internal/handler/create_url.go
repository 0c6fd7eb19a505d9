package handler

import (
	"net/http"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// CreateURL обрабатывает POST /api/urls
func (h *Handler) CreateURL(w http.ResponseWriter, r *http.Request) {
	var request model.CreateURLRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		writeDetail(w, r, http.StatusUnprocessableEntity, invalidRequestDetail)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		writeDetail(w, r, http.StatusUnprocessableEntity, invalidRequestDetail)
		return
	}

	rec, err := h.usecase.CreateShortURL(r.Context(), *request.OriginalURL)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, model.NewURLInfoResponse(rec))
}
