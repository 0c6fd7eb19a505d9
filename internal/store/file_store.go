package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/linkzip/internal/model"
)

// FileStore декоратор над Store, который добавляет персистентность через файл
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	mu          sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// FindByKey читает запись из in-memory store
func (fs *FileStore) FindByKey(ctx context.Context, key model.ShortKey) (model.URLRecord, error) {
	return fs.store.FindByKey(ctx, key)
}

// Insert сначала дописывает запись в файл и только затем публикует её в памяти,
// поэтому ключ, не попавший в файл, никогда не разрешается.
// Вставки сериализуются, чтобы дубликат не попал в файл.
func (fs *FileStore) Insert(ctx context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := fs.store.FindByKey(ctx, key); err == nil {
		return model.URLRecord{}, fmt.Errorf("key %s: %w", key, ErrAlreadyExists)
	}

	rec := fs.store.newRecord(originalURL, key)

	entry := model.URLEntry{
		UUID:        rec.ID,
		ShortKey:    rec.ShortKey.String(),
		OriginalURL: rec.OriginalURL,
		CreatedAt:   rec.CreatedAt,
	}

	if err := fs.fileStorage.Append(entry); err != nil {
		return model.URLRecord{}, fmt.Errorf("failed to append to file: %w", err)
	}

	if err := fs.store.put(rec); err != nil {
		return model.URLRecord{}, fmt.Errorf("failed to write to in-memory store: %w", err)
	}

	return rec, nil
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	data := make(RecordMap, len(entries))
	for _, entry := range entries {
		key := model.ShortKey(entry.ShortKey)
		data[key] = model.URLRecord{
			ID:          entry.UUID,
			OriginalURL: entry.OriginalURL,
			ShortKey:    key,
			CreatedAt:   entry.CreatedAt,
		}
	}

	fs.store.InitializeWith(data)

	return nil
}
