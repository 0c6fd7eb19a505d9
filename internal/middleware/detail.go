package middleware

import (
	"net/http"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/go-chi/render"
)

// writeDetail отвечает телом {"detail": ...} как и обработчики API
func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, model.ErrorResponse{Detail: detail})
}
