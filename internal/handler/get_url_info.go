package handler

import (
	"net/http"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// GetURLInfo обрабатывает GET /api/info/{short_key}
func (h *Handler) GetURLInfo(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, ShortKeyParam)

	rec, err := h.usecase.GetURLInfo(r.Context(), key)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, model.NewURLInfoResponse(rec))
}
