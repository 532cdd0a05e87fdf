package service

import (
	"strings"
	"testing"

	"flashcards/internal/domain"
	"flashcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(seed int64) *QuestionBuilder {
	rng := testutil.NewTestRand(seed)
	return NewQuestionBuilder(rng, NewDistractorSelector(rng), testutil.NewTestLogger())
}

func TestQuestionBuilder_BuildAt(t *testing.T) {
	store := newTestStore(t)
	builder := newTestBuilder(1)

	tests := []struct {
		name            string
		direction       domain.Direction
		index           int
		expectedPrompt  string
		expectedCorrect string
		expectedOptions []string
	}{
		{
			name:            "german to english",
			direction:       domain.GermanToEnglish,
			index:           0,
			expectedPrompt:  "What is the meaning of Haus?",
			expectedCorrect: "house",
			expectedOptions: []string{"house", "tree", "car", "cat"},
		},
		{
			name:            "english to german",
			direction:       domain.EnglishToGerman,
			index:           3,
			expectedPrompt:  "What is the German word for cat?",
			expectedCorrect: "Katze",
			expectedOptions: []string{"Haus", "Baum", "Auto", "Katze"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := builder.BuildAt(store, tt.direction, tt.index)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrompt, q.Prompt)
			assert.Equal(t, tt.expectedCorrect, q.CorrectAnswer)
			assert.ElementsMatch(t, tt.expectedOptions, q.Options)
			assert.Equal(t, tt.index, q.EntryIndex)
			assert.Equal(t, tt.direction, q.Direction)
		})
	}
}

func TestQuestionBuilder_Build_Invariants(t *testing.T) {
	store := newTestStore(t,
		append(testutil.NewTestEntries(),
			testutil.NewTestEntry("Hund", "dog"),
			testutil.NewTestEntry("Buch", "book"),
		)...)
	builder := newTestBuilder(99)

	for trial := 0; trial < 500; trial++ {
		direction := domain.Directions[trial%2]
		q, err := builder.Build(store, direction)
		require.NoError(t, err)

		require.Len(t, q.Options, OptionsPerQuestion)
		occurrences := 0
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				occurrences++
			}
		}
		assert.Equal(t, 1, occurrences)

		_, target := direction.Fields()
		assert.Equal(t, q.Entry.Text(target), q.CorrectAnswer)
	}
}

func TestQuestionBuilder_Build_ShuffleCoversAllPermutations(t *testing.T) {
	store := newTestStore(t)
	builder := newTestBuilder(2024)

	const trials = 24000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		q, err := builder.BuildAt(store, domain.GermanToEnglish, 0)
		require.NoError(t, err)
		counts[strings.Join(q.Options, "|")]++
	}

	// 4! orderings, each expected ~1000 times
	assert.Len(t, counts, 24)
	for perm, n := range counts {
		assert.InDelta(t, trials/24, n, 200, "permutation %s drawn %d times", perm, n)
	}
}

func TestQuestionBuilder_Build_NormalizesNewlines(t *testing.T) {
	store := newTestStore(t,
		testutil.NewTestEntry("Haus\nGebäude", "house\nbuilding"),
		testutil.NewTestEntry("Baum", "tree"),
		testutil.NewTestEntry("Auto", "car"),
		testutil.NewTestEntry("Katze", "cat"),
	)
	builder := newTestBuilder(5)

	q, err := builder.BuildAt(store, domain.GermanToEnglish, 0)
	require.NoError(t, err)
	assert.Equal(t, "What is the meaning of Haus/ Gebäude?", q.Prompt)
	assert.Equal(t, "house/ building", q.CorrectAnswer)
	assert.Contains(t, q.Options, "house/ building")

	q, err = builder.BuildAt(store, domain.EnglishToGerman, 1)
	require.NoError(t, err)
	assert.Contains(t, q.Options, "Haus/ Gebäude")
}

func TestQuestionBuilder_BuildAt_BadIndex(t *testing.T) {
	store := newTestStore(t)

	q, err := newTestBuilder(1).BuildAt(store, domain.GermanToEnglish, 4)

	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Nil(t, q)
}
