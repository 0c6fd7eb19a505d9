package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// RetryConfig политика повторов при подборе уникального ключа
type RetryConfig struct {
	// MaxAttempts 0 означает попытки без ограничения
	MaxAttempts int `env:"MAX_ATTEMPTS" yaml:"max_attempts"`
}

// Config конфигурация сервиса.
// Источники применяются по порядку: значения по умолчанию, YAML файл, флаги, переменные окружения.
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS" yaml:"server_address"`
	DatabaseDSN     string         `env:"DATABASE_DSN" yaml:"database_dsn"`
	SQLitePath      string         `env:"SQLITE_PATH" yaml:"sqlite_path"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH" yaml:"file_storage_path"`
	StaticDir       string         `env:"STATIC_DIR" yaml:"static_dir"`
	LogLevel        string         `env:"LOG_LEVEL" yaml:"log_level"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
	Retry           RetryConfig    `envPrefix:"RETRY_" yaml:"retry"`
}

// NewDefaultConfig возвращает конфигурацию по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8000},
		StaticDir:       "frontend/build",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 0,
		},
	}
}

// Load читает конфигурацию из аргументов командной строки процесса и окружения
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs читает конфигурацию из args, YAML файла и окружения
func LoadArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()
	flags := *cfg

	fs := flag.NewFlagSet("linkzip", flag.ContinueOnError)
	configPath := fs.String("c", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	fs.Var(&flags.ServerAddress, "a", "address to run HTTP server")
	fs.StringVar(&flags.DatabaseDSN, "d", flags.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&flags.SQLitePath, "l", flags.SQLitePath, "SQLite database path")
	fs.StringVar(&flags.FileStoragePath, "f", flags.FileStoragePath, "file storage path")
	fs.StringVar(&flags.StaticDir, "s", flags.StaticDir, "static assets directory")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level")
	fs.DurationVar(&flags.ShutdownTimeout, "shutdown-timeout", flags.ShutdownTimeout, "graceful shutdown timeout")
	fs.IntVar(&flags.Retry.MaxAttempts, "retry-max-attempts", flags.Retry.MaxAttempts, "key generation attempts, 0 for unbounded")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *configPath != "" {
		if err := loadFile(*configPath, cfg); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		applyFlag(cfg, &flags, f.Name)
	})

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Retry.MaxAttempts < 0 {
		return errors.New("retry max attempts must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	return nil
}

// applyFlag переносит явно заданный флаг поверх значений из файла
func applyFlag(cfg, flags *Config, name string) {
	switch name {
	case "a":
		cfg.ServerAddress = flags.ServerAddress
	case "d":
		cfg.DatabaseDSN = flags.DatabaseDSN
	case "l":
		cfg.SQLitePath = flags.SQLitePath
	case "f":
		cfg.FileStoragePath = flags.FileStoragePath
	case "s":
		cfg.StaticDir = flags.StaticDir
	case "log-level":
		cfg.LogLevel = flags.LogLevel
	case "shutdown-timeout":
		cfg.ShutdownTimeout = flags.ShutdownTimeout
	case "retry-max-attempts":
		cfg.Retry.MaxAttempts = flags.Retry.MaxAttempts
	}
}
