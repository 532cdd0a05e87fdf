package service

import (
	"math/rand"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// QuestionBuilder assembles multiple-choice questions from the store
type QuestionBuilder struct {
	rng         *rand.Rand
	distractors *DistractorSelector
	logger      *zap.Logger
}

// NewQuestionBuilder creates a new question builder
func NewQuestionBuilder(rng *rand.Rand, distractors *DistractorSelector, logger *zap.Logger) *QuestionBuilder {
	return &QuestionBuilder{
		rng:         rng,
		distractors: distractors,
		logger:      logger,
	}
}

// Build picks a random entry and builds a question for it
func (b *QuestionBuilder) Build(store *VocabularyStore, direction domain.Direction) (*domain.Question, error) {
	return b.BuildAt(store, direction, b.rng.Intn(store.Size()))
}

// BuildAt builds a question for the entry at index
func (b *QuestionBuilder) BuildAt(store *VocabularyStore, direction domain.Direction, index int) (*domain.Question, error) {
	entry, err := store.EntryAt(index)
	if err != nil {
		return nil, err
	}

	source, target := direction.Fields()
	correct := entry.Text(target)

	options, err := b.distractors.Select(store, index, target, OptionsPerQuestion-1)
	if err != nil {
		return nil, err
	}
	options = append(options, correct)
	b.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	b.logger.Debug("Question built",
		zap.Stringer("direction", direction),
		zap.Int("entry_index", index),
	)

	return &domain.Question{
		Prompt:        direction.Prompt(entry.Text(source)),
		CorrectAnswer: correct,
		Options:       options,
		Direction:     direction,
		Entry:         entry,
		EntryIndex:    index,
	}, nil
}
