package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withShortKey добавляет в запрос контекст chi с параметром short_key
func withShortKey(req *http.Request, key string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(ShortKeyParam, key)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
