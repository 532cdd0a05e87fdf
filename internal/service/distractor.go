package service

import (
	"fmt"
	"math/rand"

	"flashcards/internal/domain"
)

// DistractorSelector picks wrong answers for a question
type DistractorSelector struct {
	rng *rand.Rand
}

// NewDistractorSelector creates a new distractor selector
func NewDistractorSelector(rng *rand.Rand) *DistractorSelector {
	return &DistractorSelector{rng: rng}
}

// Select returns count field values taken from entries other than correctIndex.
// Values are distinct by entry, not by text: two entries sharing a translation
// can both appear.
func (s *DistractorSelector) Select(store *VocabularyStore, correctIndex int, field domain.Field, count int) ([]string, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	if count < 1 {
		return nil, fmt.Errorf("distractor count must be positive, got %d", count)
	}

	indices, err := store.SampleIndicesExcluding(s.rng, correctIndex, count)
	if err != nil {
		return nil, err
	}

	distractors := make([]string, 0, count)
	for _, idx := range indices {
		entry, err := store.EntryAt(idx)
		if err != nil {
			return nil, err
		}
		distractors = append(distractors, entry.Text(field))
	}

	return distractors, nil
}
