package testutil

import (
	"math/rand"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a deterministic random source
func NewTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTestEntry creates an entry without example sentences
func NewTestEntry(german, english string) domain.Entry {
	return domain.Entry{German: german, English: english}
}

// NewTestEntries returns the four-word vocabulary used across tests
func NewTestEntries() []domain.Entry {
	return []domain.Entry{
		NewTestEntry("Haus", "house"),
		NewTestEntry("Baum", "tree"),
		NewTestEntry("Auto", "car"),
		NewTestEntry("Katze", "cat"),
	}
}
