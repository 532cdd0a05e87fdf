package repository

import (
	"context"

	"flashcards/internal/domain"
)

// VocabularySource defines the vocabulary data provider
type VocabularySource interface {
	Load(ctx context.Context) ([]domain.Entry, error)
}

// ForwardFillExamples copies the last present example sentence down into
// entries that have none. Entries before the first sentence stay empty.
func ForwardFillExamples(entries []domain.Entry) {
	last := ""
	for i := range entries {
		if entries[i].HasExample() {
			last = entries[i].ExampleSentence
			continue
		}
		entries[i].ExampleSentence = last
	}
}
