package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/avc-dev/linkzip/internal/model"
)

// FileStorage управляет персистентным хранилищем записей в файле JSON Lines
type FileStorage struct {
	filePath string
	mu       sync.Mutex
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла.
// Записи читаются потоком, поэтому длина строки не ограничена.
func (fs *FileStorage) Load() ([]model.URLEntry, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, err := os.Open(fs.filePath)
	if os.IsNotExist(err) {
		return []model.URLEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	entries := []model.URLEntry{}
	decoder := json.NewDecoder(file)
	for {
		var entry model.URLEntry
		err := decoder.Decode(&entry)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode record %d: %w", len(entries)+1, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Append дописывает одну запись в конец файла
func (fs *FileStorage) Append(entry model.URLEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, err := os.OpenFile(fs.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
