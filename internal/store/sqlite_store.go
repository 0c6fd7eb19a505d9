package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avc-dev/linkzip/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// urlRow строка таблицы urls для gorm
type urlRow struct {
	ID          uint      `gorm:"primaryKey"`
	OriginalURL string    `gorm:"not null;index"`
	ShortKey    string    `gorm:"not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (urlRow) TableName() string {
	return "urls"
}

func (r urlRow) toRecord() model.URLRecord {
	return model.URLRecord{
		ID:          strconv.FormatUint(uint64(r.ID), 10),
		OriginalURL: r.OriginalURL,
		ShortKey:    model.ShortKey(r.ShortKey),
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

// SQLiteStore реализует хранилище записей в SQLite через gorm
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore открывает базу по пути dbPath и создаёт таблицу urls
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}

	// SQLite допускает одного писателя, пул из одного соединения убирает SQLITE_BUSY
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := conn.AutoMigrate(&urlRow{}); err != nil {
		return nil, fmt.Errorf("migrating sqlite: %w", err)
	}

	return &SQLiteStore{db: conn}, nil
}

// FindByKey читает запись по короткому ключу
func (s *SQLiteStore) FindByKey(ctx context.Context, key model.ShortKey) (model.URLRecord, error) {
	var row urlRow
	err := s.db.WithContext(ctx).Where("short_key = ?", string(key)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.URLRecord{}, fmt.Errorf("key %s: %w", key, ErrNotFound)
		}
		return model.URLRecord{}, fmt.Errorf("failed to read from sqlite: %w", err)
	}

	return row.toRecord(), nil
}

// Insert сохраняет новую запись; дубликат ключа возвращается как ErrAlreadyExists
func (s *SQLiteStore) Insert(ctx context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error) {
	row := urlRow{
		OriginalURL: originalURL,
		ShortKey:    string(key),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.URLRecord{}, fmt.Errorf("key %s: %w", key, ErrAlreadyExists)
		}
		return model.URLRecord{}, fmt.Errorf("failed to insert into sqlite: %w", err)
	}

	return row.toRecord(), nil
}

// Close закрывает соединение с базой
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
