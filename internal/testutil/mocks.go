package testutil

import (
	"context"

	"flashcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVocabularySource is a mock for repository.VocabularySource
type MockVocabularySource struct {
	mock.Mock
}

func (m *MockVocabularySource) Load(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
