package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashcards/internal/config"
	"flashcards/internal/console"
	applog "flashcards/internal/logger"
	"flashcards/internal/repository"
	"flashcards/internal/repository/postgres"
	"flashcards/internal/repository/xlsx"
	"flashcards/internal/service"
	"flashcards/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := applog.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting flashcards", zap.String("source", cfg.Vocabulary.Source))

	// Ctrl+C cancels the context; the session turns that into a clean shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, logger, os.Stdin, os.Stdout, os.Stderr)
	stop()
	logger.Sync()
	os.Exit(code)
}

// run plays the quiz until ctx is cancelled and returns the process exit code
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, in io.Reader, out, errOut io.Writer) int {
	store, err := loadVocabulary(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(errOut, "Could not load vocabulary: %v\n", err)
		logger.Error("Failed to load vocabulary", zap.Error(err))
		return 1
	}

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Session seeded", zap.Int64("seed", seed))

	loop := session.NewLoop(
		store,
		console.New(in, out),
		rand.New(rand.NewSource(seed)),
		cfg.Session.RoundDelay,
		logger,
	)

	if err := loop.Run(ctx); err != nil {
		fmt.Fprintf(errOut, "Session failed: %v\n", err)
		logger.Error("Session failed", zap.Error(err))
		return 1
	}
	return 0
}

// loadVocabulary reads the configured source into the session store
func loadVocabulary(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*service.VocabularyStore, error) {
	var source repository.VocabularySource

	switch cfg.Vocabulary.Source {
	case config.SourcePostgres:
		db, err := connectDatabase(ctx, cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		if err := runMigrations(db, logger); err != nil {
			return nil, err
		}
		source = postgres.NewVocabularyRepo(db)
	default:
		source = xlsx.NewVocabularyFile(cfg.Vocabulary.Path, cfg.Vocabulary.Sheet)
	}

	return service.LoadStore(ctx, source, logger)
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 5
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				return db, nil
			}
			db.Close()
		}

		logger.Warn("Failed to connect to database",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations creates the vocabulary table if needed
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
