package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avc-dev/linkzip/internal/mocks"
	"github.com/avc-dev/linkzip/internal/model"
	"github.com/avc-dev/linkzip/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetOriginalURL_Success(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		storedURL string
	}{
		{name: "Simple key", key: "abc123", storedURL: "https://example.com"},
		{name: "URL containing path", key: "xyz987", storedURL: "https://example.com/path/to/resource"},
		{name: "URL containing query params", key: "qwer12", storedURL: "https://example.com?param=value&other=test"},
		{name: "URL containing anchor", key: "anch99", storedURL: "https://example.com/page#section"},
		{name: "Unicode URL", key: "unic01", storedURL: "https://example.com/путь"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewMockURLReader(t)
			mockService := mocks.NewMockURLService(t)

			mockRepo.EXPECT().
				GetURLByKey(mock.Anything, model.ShortKey(tt.key)).
				Return(model.URLRecord{OriginalURL: tt.storedURL, ShortKey: model.ShortKey(tt.key)}, nil).
				Once()

			usecase := NewURLUsecase(mockRepo, mockService, zap.NewNop())

			// Act
			result, err := usecase.GetOriginalURL(context.Background(), tt.key)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.storedURL, result)
		})
	}
}

func TestGetURLInfo_Errors(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		expectedErr error
	}{
		{
			name:        "not found",
			repoErr:     fmt.Errorf("failed to get URL by key: %w", store.ErrNotFound),
			expectedErr: ErrURLNotFound,
		},
		{
			name:        "storage failure",
			repoErr:     errors.New("connection refused"),
			expectedErr: ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewMockURLReader(t)
			mockService := mocks.NewMockURLService(t)

			mockRepo.EXPECT().
				GetURLByKey(mock.Anything, model.ShortKey("zzz999")).
				Return(model.URLRecord{}, tt.repoErr).
				Twice()

			usecase := NewURLUsecase(mockRepo, mockService, zap.NewNop())

			// Act
			_, infoErr := usecase.GetURLInfo(context.Background(), "zzz999")
			_, redirectErr := usecase.GetOriginalURL(context.Background(), "zzz999")

			// Assert
			assert.ErrorIs(t, infoErr, tt.expectedErr)
			assert.ErrorIs(t, redirectErr, tt.expectedErr)
		})
	}
}

// TestGetURLInfo_Idempotent проверяет, что повторные чтения возвращают одно и то же
func TestGetURLInfo_Idempotent(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLReader(t)
	mockService := mocks.NewMockURLService(t)
	stored := model.URLRecord{
		ID:          "42",
		OriginalURL: "https://www.example.com",
		ShortKey:    "aB3xY9",
		CreatedAt:   time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}

	mockRepo.EXPECT().
		GetURLByKey(mock.Anything, stored.ShortKey).
		Return(stored, nil).
		Times(3)

	usecase := NewURLUsecase(mockRepo, mockService, zap.NewNop())

	// Act & Assert
	for i := 0; i < 3; i++ {
		rec, err := usecase.GetURLInfo(context.Background(), "aB3xY9")
		require.NoError(t, err)
		assert.Equal(t, stored, rec)
	}
}
