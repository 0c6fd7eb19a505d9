package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // Регистрируем pgx драйвер для database/sql
)

// Config содержит настройки подключения к базе данных
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   time.Minute * 30,
		HealthCheckPeriod: time.Minute,
	}
}

// Connect создает пул подключений к PostgreSQL и отдельный *sql.DB для миграций
func (c *Config) Connect(ctx context.Context) (Database, error) {
	if c.DSN == "" {
		return nil, errors.New("database DSN is required")
	}

	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}
	// Миграциям хватает одного соединения
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(c.MaxConnIdleTime)

	config, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = c.MaxConns
	config.MinConns = c.MinConns
	config.MaxConnLifetime = c.MaxConnLifetime
	config.MaxConnIdleTime = c.MaxConnIdleTime
	config.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDBAdapter(pool, sqlDB), nil
}

//go:generate mockery --name Database

// Database интерфейс для работы с базой данных
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// DB возвращает *sql.DB для миграций
	DB() *sql.DB
	// Pool возвращает пул для запросов хранилища
	Pool() *pgxpool.Pool
}

// DBAdapter адаптер для pgxpool.Pool к Database интерфейсу
type DBAdapter struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// NewDBAdapter создает новый адаптер
func NewDBAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *DBAdapter {
	return &DBAdapter{
		pool:  pool,
		sqlDB: sqlDB,
	}
}

func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

// Close закрывает соединения
func (d *DBAdapter) Close() {
	d.pool.Close()
	if d.sqlDB != nil {
		d.sqlDB.Close()
	}
}

func (d *DBAdapter) DB() *sql.DB {
	return d.sqlDB
}

func (d *DBAdapter) Pool() *pgxpool.Pool {
	return d.pool
}
