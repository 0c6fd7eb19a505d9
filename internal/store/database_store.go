package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avc-dev/linkzip/internal/config/db"
	"github.com/avc-dev/linkzip/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// DatabaseStore реализует хранилище записей в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	return &DatabaseStore{
		pool: database.Pool(),
	}
}

// FindByKey читает запись по короткому ключу
func (ds *DatabaseStore) FindByKey(ctx context.Context, key model.ShortKey) (model.URLRecord, error) {
	var (
		id        int64
		rec       model.URLRecord
		shortKey  string
		createdAt time.Time
	)

	query := `
		SELECT id, original_url, short_key, created_at
		FROM urls
		WHERE short_key = $1
	`

	err := ds.pool.QueryRow(ctx, query, string(key)).Scan(&id, &rec.OriginalURL, &shortKey, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLRecord{}, fmt.Errorf("key %s: %w", key, ErrNotFound)
		}
		return model.URLRecord{}, fmt.Errorf("failed to read from database: %w", err)
	}

	rec.ID = strconv.FormatInt(id, 10)
	rec.ShortKey = model.ShortKey(shortKey)
	rec.CreatedAt = createdAt.UTC()

	return rec, nil
}

// Insert сохраняет новую запись. Нарушение уникального индекса на short_key
// возвращается как ErrAlreadyExists.
func (ds *DatabaseStore) Insert(ctx context.Context, originalURL string, key model.ShortKey) (model.URLRecord, error) {
	var (
		id        int64
		createdAt time.Time
	)

	query := `
		INSERT INTO urls (original_url, short_key)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := ds.pool.QueryRow(ctx, query, originalURL, string(key)).Scan(&id, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.URLRecord{}, fmt.Errorf("key %s: %w", key, ErrAlreadyExists)
		}
		return model.URLRecord{}, fmt.Errorf("failed to insert into database: %w", err)
	}

	return model.URLRecord{
		ID:          strconv.FormatInt(id, 10),
		OriginalURL: originalURL,
		ShortKey:    key,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
