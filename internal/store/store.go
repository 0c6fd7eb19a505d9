package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/avc-dev/linkzip/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
)

// RecordMap представляет маппинг коротких ключей на записи
type RecordMap = map[model.ShortKey]model.URLRecord

// Store потокобезопасное in-memory хранилище записей
type Store struct {
	store RecordMap
	mutex sync.RWMutex
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		store: make(RecordMap),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) FindByKey(_ context.Context, key model.ShortKey) (model.URLRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rec, ok := s.store[key]
	if !ok {
		return model.URLRecord{}, fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	return rec, nil
}

// Insert сохраняет новую запись, назначая ей идентификатор и время создания.
// Проверка и вставка выполняются под одной блокировкой.
func (s *Store) Insert(_ context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.store[key]; exists {
		return model.URLRecord{}, fmt.Errorf("key %s: %w", key, ErrAlreadyExists)
	}

	rec := s.newRecord(originalURL, key)
	s.store[key] = rec

	return rec, nil
}

// newRecord назначает записи идентификатор и время создания
func (s *Store) newRecord(originalURL string, key model.ShortKey) model.URLRecord {
	return model.URLRecord{
		ID:          uuid.New().String(),
		OriginalURL: originalURL,
		ShortKey:    key,
		CreatedAt:   s.now(),
	}
}

// put сохраняет готовую запись, если ключ свободен
func (s *Store) put(rec model.URLRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.store[rec.ShortKey]; exists {
		return fmt.Errorf("key %s: %w", rec.ShortKey, ErrAlreadyExists)
	}
	s.store[rec.ShortKey] = rec

	return nil
}

// InitializeWith инициализирует хранилище данными (без проверки на существование)
// Используется для массовой загрузки данных, например, из файла
func (s *Store) InitializeWith(data RecordMap) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	maps.Copy(s.store, data)
}

// Len возвращает количество записей
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.store)
}
