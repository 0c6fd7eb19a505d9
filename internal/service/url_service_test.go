package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avc-dev/linkzip/internal/mocks"
	"github.com/avc-dev/linkzip/internal/model"
	"github.com/avc-dev/linkzip/internal/repository"
	"github.com/avc-dev/linkzip/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testURL = "https://www.example.com"

func newTestService(t *testing.T, retry RetryPolicy) (*URLService, *mocks.MockURLRepository, *mocks.MockGenerator) {
	t.Helper()

	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)

	service := NewURLService(mockRepo, retry, zap.NewNop())
	// Заменяем генератор на mock для теста
	service.codeGenerator = mockGenerator

	return service, mockRepo, mockGenerator
}

func record(key model.ShortKey) model.URLRecord {
	return model.URLRecord{
		ID:          "1",
		OriginalURL: testURL,
		ShortKey:    key,
		CreatedAt:   time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

// TestCreateShortURL_Success проверяет успешное создание записи с первой попытки
func TestCreateShortURL_Success(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t, RetryPolicy{})
	key := model.ShortKey("aB3xY9")

	mockGenerator.EXPECT().GenerateKey().Return(key, nil).Once()
	mockRepo.EXPECT().Exists(mock.Anything, key).Return(false, nil).Once()
	mockRepo.EXPECT().CreateURL(mock.Anything, testURL, key).Return(record(key), nil).Once()

	// Act
	rec, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, record(key), rec)
}

// TestCreateShortURL_KeyTaken проверяет повтор, если ключ уже занят
func TestCreateShortURL_KeyTaken(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t, RetryPolicy{})
	taken := model.ShortKey("taken1")
	free := model.ShortKey("free22")

	mockGenerator.EXPECT().GenerateKey().Return(taken, nil).Once()
	mockGenerator.EXPECT().GenerateKey().Return(free, nil).Once()
	mockRepo.EXPECT().Exists(mock.Anything, taken).Return(true, nil).Once()
	mockRepo.EXPECT().Exists(mock.Anything, free).Return(false, nil).Once()
	mockRepo.EXPECT().CreateURL(mock.Anything, testURL, free).Return(record(free), nil).Once()

	// Act
	rec, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, free, rec.ShortKey)
	mockRepo.AssertNotCalled(t, "CreateURL", mock.Anything, testURL, taken)
}

// TestCreateShortURL_InsertConflict проверяет, что конфликт при вставке
// (ключ заняли между проверкой и вставкой) приводит к повтору, а не к ошибке
func TestCreateShortURL_InsertConflict(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t, RetryPolicy{})
	raced := model.ShortKey("raced1")
	free := model.ShortKey("free22")

	mockGenerator.EXPECT().GenerateKey().Return(raced, nil).Once()
	mockGenerator.EXPECT().GenerateKey().Return(free, nil).Once()
	mockRepo.EXPECT().Exists(mock.Anything, raced).Return(false, nil).Once()
	mockRepo.EXPECT().Exists(mock.Anything, free).Return(false, nil).Once()
	mockRepo.EXPECT().
		CreateURL(mock.Anything, testURL, raced).
		Return(model.URLRecord{}, fmt.Errorf("failed to create URL: %w", store.ErrAlreadyExists)).
		Once()
	mockRepo.EXPECT().CreateURL(mock.Anything, testURL, free).Return(record(free), nil).Once()

	// Act
	rec, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, free, rec.ShortKey)
}

// TestCreateShortURL_BoundedRetriesExceeded проверяет отдельную ошибку при исчерпании попыток
func TestCreateShortURL_BoundedRetriesExceeded(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t, RetryPolicy{MaxAttempts: 3})
	key := model.ShortKey("taken1")

	mockGenerator.EXPECT().GenerateKey().Return(key, nil).Times(3)
	mockRepo.EXPECT().Exists(mock.Anything, key).Return(true, nil).Times(3)

	// Act
	_, err := service.CreateShortURL(context.Background(), testURL)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
}

// TestCreateShortURL_StorageErrors проверяет, что ошибки хранилища не повторяются
func TestCreateShortURL_StorageErrors(t *testing.T) {
	storageErr := errors.New("connection refused")
	key := model.ShortKey("aB3xY9")

	t.Run("exists check fails", func(t *testing.T) {
		service, mockRepo, mockGenerator := newTestService(t, RetryPolicy{})

		mockGenerator.EXPECT().GenerateKey().Return(key, nil).Once()
		mockRepo.EXPECT().Exists(mock.Anything, key).Return(false, storageErr).Once()

		_, err := service.CreateShortURL(context.Background(), testURL)

		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("insert fails", func(t *testing.T) {
		service, mockRepo, mockGenerator := newTestService(t, RetryPolicy{})

		mockGenerator.EXPECT().GenerateKey().Return(key, nil).Once()
		mockRepo.EXPECT().Exists(mock.Anything, key).Return(false, nil).Once()
		mockRepo.EXPECT().CreateURL(mock.Anything, testURL, key).Return(model.URLRecord{}, storageErr).Once()

		_, err := service.CreateShortURL(context.Background(), testURL)

		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("generator fails", func(t *testing.T) {
		service, _, mockGenerator := newTestService(t, RetryPolicy{})
		genErr := errors.New("entropy exhausted")

		mockGenerator.EXPECT().GenerateKey().Return("", genErr).Once()

		_, err := service.CreateShortURL(context.Background(), testURL)

		assert.ErrorIs(t, err, genErr)
	})
}

// TestCreateShortURL_RealStore проверяет сервис поверх in-memory хранилища
func TestCreateShortURL_RealStore(t *testing.T) {
	memStore := store.NewStore()
	service := NewURLService(repository.New(memStore), RetryPolicy{}, zap.NewNop())

	rec, err := service.CreateShortURL(context.Background(), testURL)
	require.NoError(t, err)
	assert.Len(t, rec.ShortKey.String(), KeyLength)
	assert.Equal(t, testURL, rec.OriginalURL)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	found, err := memStore.FindByKey(context.Background(), rec.ShortKey)
	require.NoError(t, err)
	assert.Equal(t, rec, found)
}
