package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL",
	"VOCAB_SOURCE", "VOCAB_PATH", "VOCAB_SHEET",
	"ROUND_DELAY", "RANDOM_SEED",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, SourceXLSX, cfg.Vocabulary.Source)
	assert.Equal(t, "./Vocabular.xlsx", cfg.Vocabulary.Path)
	assert.Empty(t, cfg.Vocabulary.Sheet)
	assert.Equal(t, 2*time.Second, cfg.Session.RoundDelay)
	assert.Zero(t, cfg.Session.Seed)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "flashcards", cfg.Database.Name)
	assert.Equal(t, "flashcards", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOCAB_PATH", "/data/words.xlsx")
	t.Setenv("VOCAB_SHEET", "Nomen")
	t.Setenv("ROUND_DELAY", "500ms")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/data/words.xlsx", cfg.Vocabulary.Path)
	assert.Equal(t, "Nomen", cfg.Vocabulary.Sheet)
	assert.Equal(t, 500*time.Millisecond, cfg.Session.RoundDelay)
	assert.Equal(t, int64(42), cfg.Session.Seed)
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOCAB_SOURCE", SourcePostgres)
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, cfg.Vocabulary.Source)
	assert.Contains(t, cfg.DSN(), "password=secret")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "postgres without password",
			env:         map[string]string{"VOCAB_SOURCE": SourcePostgres},
			errContains: "DB_PASSWORD",
		},
		{
			name:        "unknown source",
			env:         map[string]string{"VOCAB_SOURCE": "csv"},
			errContains: "VOCAB_SOURCE",
		},
		{
			name:        "bad delay",
			env:         map[string]string{"ROUND_DELAY": "soon"},
			errContains: "ROUND_DELAY",
		},
		{
			name:        "negative delay",
			env:         map[string]string{"ROUND_DELAY": "-1s"},
			errContains: "ROUND_DELAY",
		},
		{
			name:        "bad seed",
			env:         map[string]string{"RANDOM_SEED": "abc"},
			errContains: "RANDOM_SEED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
