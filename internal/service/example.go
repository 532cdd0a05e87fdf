package service

import (
	"context"
	"strings"

	"flashcards/internal/domain"
)

// Separator closes every round
var Separator = strings.Repeat("-", 50)

const translationPrompt = "Would you like to see the translation? (yes/no): "

// ExamplePresenter shows example sentences after a question
type ExamplePresenter struct {
	console Console
}

// NewExamplePresenter creates a new example presenter
func NewExamplePresenter(console Console) *ExamplePresenter {
	return &ExamplePresenter{console: console}
}

// Present prints the entry's example sentence and offers its translation.
// The separator line is written even when the prompt is interrupted.
func (p *ExamplePresenter) Present(ctx context.Context, entry domain.Entry) error {
	defer p.console.WriteLine(Separator)

	if !entry.HasExample() {
		return nil
	}
	p.console.WriteLine("Example sentence: " + entry.ExampleSentence)

	if !entry.HasExampleTranslation() {
		return nil
	}

	answer, err := p.console.Prompt(ctx, translationPrompt)
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(answer), "yes") {
		p.console.WriteLine(entry.ExampleSentenceTranslation)
	}
	return nil
}
