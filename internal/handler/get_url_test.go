package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/linkzip/internal/mocks"
	"github.com/avc-dev/linkzip/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

// TestRedirect_Success проверяет, что Location совпадает с сохранённым URL побайтово
func TestRedirect_Success(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		storedURL string
	}{
		{name: "Simple URL", key: "aB3xY9", storedURL: "https://example.com"},
		{name: "URL containing path", key: "xyz987", storedURL: "https://example.com/path/to/resource"},
		{name: "URL containing query params", key: "qwer12", storedURL: "https://example.com?param=value&other=test"},
		{name: "URL containing anchor", key: "asdf90", storedURL: "https://example.com/page#section"},
		{name: "Unicode URL", key: "unic01", storedURL: "https://пример.рф/путь?q=значение"},
		{name: "Scheme only", key: "bare01", storedURL: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().
				GetOriginalURL(mock.Anything, tt.key).
				Return(tt.storedURL, nil).
				Once()

			h := New(mockUsecase, zaptest.NewLogger(t))

			req := withShortKey(httptest.NewRequest(http.MethodGet, "/"+tt.key, nil), tt.key)
			w := httptest.NewRecorder()

			// Act
			h.Redirect(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
			assert.Equal(t, tt.storedURL, resp.Header.Get("Location"))
		})
	}
}

func TestRedirect_Errors(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		usecaseErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Key not found",
			key:            "nokey1",
			usecaseErr:     usecase.ErrURLNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Short URL not found"}`,
		},
		{
			name:           "Key of unexpected length",
			key:            "verylongkey",
			usecaseErr:     fmt.Errorf("%w: lookup", usecase.ErrURLNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Short URL not found"}`,
		},
		{
			name:           "Storage failure",
			key:            "dberr1",
			usecaseErr:     fmt.Errorf("%w: %w", usecase.ErrServiceUnavailable, errors.New("connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().
				GetOriginalURL(mock.Anything, tt.key).
				Return("", tt.usecaseErr).
				Once()

			h := New(mockUsecase, zaptest.NewLogger(t))

			req := withShortKey(httptest.NewRequest(http.MethodGet, "/"+tt.key, nil), tt.key)
			w := httptest.NewRecorder()

			// Act
			h.Redirect(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Empty(t, resp.Header.Get("Location"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
