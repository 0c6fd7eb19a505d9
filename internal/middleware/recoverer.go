package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

const internalErrorDetail = "Internal Server Error"

// Recoverer перехватывает панику обработчика и отвечает 500 с телом {"detail": ...}.
// http.ErrAbortHandler пробрасывается дальше, чтобы сервер оборвал соединение.
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("Recovered from panic",
					zap.Any("panic", rvr),
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.ByteString("stack", debug.Stack()),
				)
				writeDetail(w, r, http.StatusInternalServerError, internalErrorDetail)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
