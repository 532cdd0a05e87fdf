package logger

import (
	"fmt"

	"go.uber.org/zap"

	"flashcards/internal/config"
)

// New builds the application logger. Development output goes to stderr so
// it stays out of the quiz on stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{"stderr"}

	return zcfg.Build()
}
