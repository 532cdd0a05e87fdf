package repository

import (
	"testing"

	"flashcards/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestForwardFillExamples(t *testing.T) {
	tests := []struct {
		name     string
		examples []string
		expected []string
	}{
		{
			name:     "fills gaps below first value",
			examples: []string{"a", "", ""},
			expected: []string{"a", "a", "a"},
		},
		{
			name:     "leading gap stays empty",
			examples: []string{"", "b", ""},
			expected: []string{"", "b", "b"},
		},
		{
			name:     "latest value wins",
			examples: []string{"a", "", "c", ""},
			expected: []string{"a", "a", "c", "c"},
		},
		{
			name:     "nothing to fill",
			examples: []string{"", ""},
			expected: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]domain.Entry, len(tt.examples))
			for i, ex := range tt.examples {
				entries[i] = domain.Entry{German: "de", English: "en", ExampleSentence: ex}
			}

			ForwardFillExamples(entries)

			got := make([]string, len(entries))
			for i, e := range entries {
				got[i] = e.ExampleSentence
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestForwardFillExamples_LeavesTranslationsAlone(t *testing.T) {
	entries := []domain.Entry{
		{German: "Haus", English: "house", ExampleSentence: "Das Haus.", ExampleSentenceTranslation: "The house."},
		{German: "Baum", English: "tree"},
	}

	ForwardFillExamples(entries)

	assert.Equal(t, "Das Haus.", entries[1].ExampleSentence)
	assert.Empty(t, entries[1].ExampleSentenceTranslation)
}
