package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const decompressFailedDetail = "Failed to decompress request body"

// compressibleTypes типы ответов API и фронтенда, которые имеет смысл сжимать
var compressibleTypes = map[string]bool{
	"application/json":       true,
	"text/html":              true,
	"text/css":               true,
	"text/javascript":        true,
	"application/javascript": true,
}

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// shouldCompress проверяет Content-Type без параметров и без учёта регистра
func shouldCompress(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return compressibleTypes[strings.ToLower(strings.TrimSpace(mediaType))]
}

// compressible решает, сжимать ли ответ со статусом status.
// Редиректы, ошибки и частичные ответы уходят как есть.
func compressible(status int, header http.Header) bool {
	if status != http.StatusOK && status != http.StatusCreated {
		return false
	}
	if header.Get("Content-Encoding") != "" {
		return false
	}
	return shouldCompress(header.Get("Content-Type"))
}

// gzipBody распаковывает тело запроса и возвращает gzip.Reader в пул при закрытии
type gzipBody struct {
	src io.ReadCloser
	zr  *gzip.Reader
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	if err := b.zr.Close(); err != nil {
		return err
	}
	return b.src.Close()
}

// compressWriter откладывает решение о сжатии до WriteHeader
type compressWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *compressWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	if compressible(status, h) {
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		h.Add("Vary", "Accept-Encoding")

		w.zw = gzipWriters.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(status)
}

func (w *compressWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw != nil {
		return w.zw.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

// finish дописывает gzip поток и возвращает writer в пул
func (w *compressWriter) finish() error {
	if w.zw == nil {
		return nil
	}
	err := w.zw.Close()
	w.zw.Reset(io.Discard)
	gzipWriters.Put(w.zw)
	w.zw = nil
	return err
}

// GzipMiddleware распаковывает тела запросов с Content-Encoding: gzip и сжимает
// ответы для клиентов, которые принимают gzip
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				zr, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Error("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
						zap.String("remote_addr", r.RemoteAddr),
					)
					writeDetail(w, r, http.StatusBadRequest, decompressFailedDetail)
					return
				}
				body := &gzipBody{src: r.Body, zr: zr}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("Failed to close request body", zap.Error(err), zap.String("uri", r.RequestURI))
					}
				}()
				r.Body = body
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressWriter{ResponseWriter: w}
			defer func() {
				if err := cw.finish(); err != nil {
					logger.Error("Failed to finish gzip stream", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}
