package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"transaction-seeder/internal/export"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/validation"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Config struct {
	Generator GeneratorConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
}

type GeneratorConfig struct {
	Scenario string `env:"SEEDER_SCENARIO" validate:"required,scenario"`
	// Rows of zero means the scenario default
	Rows        int    `env:"SEEDER_ROWS" validate:"min=0"`
	Seed        *int64 `env:"SEEDER_SEED"`
	Output      string `env:"SEEDER_OUTPUT" validate:"required"`
	UseCRLF     bool   `env:"SEEDER_CRLF"`
	MetricsFile string `env:"SEEDER_METRICS_FILE"`
}

type ServerConfig struct {
	Port               string        `env:"SERVER_PORT" validate:"required,numeric"`
	Host               string        `env:"SERVER_HOST"`
	Environment        string        `env:"APP_ENV" validate:"oneof=development production testing"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout    time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`
	RateLimitPerSecond int           `env:"RATE_LIMIT_PER_SECOND" validate:"min=1"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" validate:"min=1"`
}

type DatabaseConfig struct {
	Driver          string `env:"DB_DRIVER" validate:"required,db_driver"`
	SQLitePath      string `env:"DB_SQLITE_PATH" validate:"required_if=Driver sqlite"`
	Host            string `env:"DB_HOST"`
	Port            string `env:"DB_PORT"`
	User            string `env:"DB_USER"`
	Password        string `env:"DB_PASSWORD"`
	Name            string `env:"DB_NAME"`
	SSLMode         string `env:"DB_SSL_MODE"`
	MaxConnections  int    `env:"DB_MAX_CONNECTIONS" validate:"min=1"`
	MaxIdleConns    int    `env:"DB_MAX_IDLE_CONNS" validate:"min=0"`
	ConnMaxLifetime time.Duration
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `env:"LOG_FORMAT" validate:"oneof=text json"`
}

// Load reads configuration from the environment. Values from envFiles (or
// .env when none are given) fill in variables that are not already set.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	config := &Config{
		Generator: GeneratorConfig{
			Scenario:    getEnv("SEEDER_SCENARIO", models.ScenarioRecent),
			Rows:        getIntEnv("SEEDER_ROWS", 0),
			Seed:        getOptionalInt64Env("SEEDER_SEED"),
			Output:      getEnv("SEEDER_OUTPUT", export.DefaultFileName),
			UseCRLF:     getBoolEnv("SEEDER_CRLF", false),
			MetricsFile: getEnv("SEEDER_METRICS_FILE", ""),
		},
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:    getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "transactions.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "seeder"),
			Password:        getEnv("DB_PASSWORD", "seeder"),
			Name:            getEnv("DB_NAME", "transactions"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every section against its validate tags
func (c *Config) Validate() error {
	if err := validation.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrateURL is the golang-migrate database URL for the postgres settings
func (c *DatabaseConfig) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *DatabaseConfig) IsSQLite() bool {
	return c.Driver == "sqlite"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getOptionalInt64Env returns nil when the variable is unset or not an integer
func getOptionalInt64Env(key string) *int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return &intVal
		}
	}
	return nil
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
