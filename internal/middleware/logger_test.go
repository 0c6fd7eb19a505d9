package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedLevel zapcore.Level
	}{
		{
			name:          "created",
			status:        http.StatusCreated,
			body:          `{"original_url":"https://www.example.com","short_key":"aB3xY9"}`,
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "redirect",
			status:        http.StatusTemporaryRedirect,
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "internal error",
			status:        http.StatusInternalServerError,
			body:          `{"detail":"Internal Server Error"}`,
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/info/aB3xY9", nil)
			rec := httptest.NewRecorder()

			Logger(zap.New(core))(handler).ServeHTTP(rec, req)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(len(tt.body)), fields["size"])
			assert.Equal(t, "/api/info/aB3xY9", fields["uri"])
		})
	}
}
