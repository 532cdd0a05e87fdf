package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Vocabulary source kinds
const (
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Env        string
	LogLevel   string
	Vocabulary VocabularyConfig
	Session    SessionConfig
	Database   DatabaseConfig
}

// VocabularyConfig selects where the word list comes from
type VocabularyConfig struct {
	Source string
	Path   string
	Sheet  string
}

// SessionConfig holds quiz pacing and randomness settings
type SessionConfig struct {
	RoundDelay time.Duration
	// Seed is zero when the session should be seeded from the clock
	Seed int64
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "warn"),
		Vocabulary: VocabularyConfig{
			Source: getEnv("VOCAB_SOURCE", SourceXLSX),
			Path:   getEnv("VOCAB_PATH", "./Vocabular.xlsx"),
			Sheet:  os.Getenv("VOCAB_SHEET"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashcards"),
			User:     getEnv("DB_USER", "flashcards"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	delay, err := time.ParseDuration(getEnv("ROUND_DELAY", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROUND_DELAY: %w", err)
	}
	if delay < 0 {
		return nil, fmt.Errorf("ROUND_DELAY must not be negative")
	}
	cfg.Session.RoundDelay = delay

	if seed := os.Getenv("RANDOM_SEED"); seed != "" {
		cfg.Session.Seed, err = strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
		}
	}

	// Validate required fields
	switch cfg.Vocabulary.Source {
	case SourceXLSX:
		if cfg.Vocabulary.Path == "" {
			return nil, fmt.Errorf("VOCAB_PATH is required")
		}
	case SourcePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for the postgres source")
		}
	default:
		return nil, fmt.Errorf("unknown VOCAB_SOURCE %q", cfg.Vocabulary.Source)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
