package service

import (
	"fmt"
	"strconv"
	"strings"

	"flashcards/internal/domain"
)

// AnswerEvaluator checks user choices against questions
type AnswerEvaluator struct{}

// NewAnswerEvaluator creates a new answer evaluator
func NewAnswerEvaluator() *AnswerEvaluator {
	return &AnswerEvaluator{}
}

// ParseChoice converts raw input into a 1-based option number
func (e *AnswerEvaluator) ParseChoice(input string, numOptions int) (int, error) {
	input = strings.TrimSpace(input)
	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidChoice, input)
	}
	if choice < 1 || choice > numOptions {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", domain.ErrInvalidChoice, choice, numOptions)
	}
	return choice, nil
}

// Evaluate compares the option at the 1-based position chosen with the correct answer
func (e *AnswerEvaluator) Evaluate(q *domain.Question, chosen int) (domain.Verdict, error) {
	if chosen < 1 || chosen > len(q.Options) {
		return domain.Verdict{}, fmt.Errorf("%w: %d is not between 1 and %d", domain.ErrInvalidChoice, chosen, len(q.Options))
	}

	return domain.Verdict{
		Correct:       q.Options[chosen-1] == q.CorrectAnswer,
		CorrectAnswer: q.CorrectAnswer,
	}, nil
}
