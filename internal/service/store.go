package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"go.uber.org/zap"
)

// OptionsPerQuestion is the number of choices shown for every question
const OptionsPerQuestion = 4

// VocabularyStore is the immutable, ordered vocabulary of a session
type VocabularyStore struct {
	entries []domain.Entry
}

// NewVocabularyStore validates entries and creates a store over a copy of them
func NewVocabularyStore(entries []domain.Entry) (*VocabularyStore, error) {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	if len(entries) < OptionsPerQuestion {
		return nil, fmt.Errorf("%w: need at least %d entries, got %d",
			domain.ErrInsufficientData, OptionsPerQuestion, len(entries))
	}

	return &VocabularyStore{entries: append([]domain.Entry(nil), entries...)}, nil
}

// LoadStore reads the vocabulary from source and builds the session store
func LoadStore(ctx context.Context, source repository.VocabularySource, logger *zap.Logger) (*VocabularyStore, error) {
	entries, err := source.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrLoad) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}

	store, err := NewVocabularyStore(entries)
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary loaded", zap.Int("entries", store.Size()))
	return store, nil
}

// Size returns the number of entries
func (s *VocabularyStore) Size() int {
	return len(s.entries)
}

// EntryAt returns the entry at index
func (s *VocabularyStore) EntryAt(index int) (domain.Entry, error) {
	if index < 0 || index >= len(s.entries) {
		return domain.Entry{}, fmt.Errorf("%w: %d not in [0, %d)", domain.ErrIndexOutOfRange, index, len(s.entries))
	}
	return s.entries[index], nil
}

// SampleIndicesExcluding draws count distinct indices uniformly at random,
// never returning exclude
func (s *VocabularyStore) SampleIndicesExcluding(rng *rand.Rand, exclude, count int) ([]int, error) {
	if exclude < 0 || exclude >= len(s.entries) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", domain.ErrIndexOutOfRange, exclude, len(s.entries))
	}
	if count < 0 || count > len(s.entries)-1 {
		return nil, fmt.Errorf("%w: cannot sample %d of %d other entries",
			domain.ErrInsufficientData, count, len(s.entries)-1)
	}

	candidates := make([]int, 0, len(s.entries)-1)
	for i := range s.entries {
		if i != exclude {
			candidates = append(candidates, i)
		}
	}

	// Partial Fisher-Yates: the first count slots end up a uniform sample
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return candidates[:count], nil
}
