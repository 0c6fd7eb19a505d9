package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ShortKeyParam имя параметра маршрута с коротким ключом
const ShortKeyParam = "short_key"

// Redirect обрабатывает GET /{short_key}.
// Location содержит сохранённый URL без изменений.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, ShortKeyParam)

	originalURL, err := h.usecase.GetOriginalURL(r.Context(), key)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Location", originalURL)
	w.WriteHeader(http.StatusTemporaryRedirect)
}
