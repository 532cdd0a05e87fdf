package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"flashcards/internal/domain"
	"flashcards/internal/repository"
)

// VocabularyRepo implements repository.VocabularySource
type VocabularyRepo struct {
	db *sql.DB
}

var _ repository.VocabularySource = (*VocabularyRepo)(nil)

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// Load returns all vocabulary rows in insertion order
func (r *VocabularyRepo) Load(ctx context.Context) ([]domain.Entry, error) {
	query := `
		SELECT german, english, example_sentence, example_sentence_translation
		FROM vocabulary
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query vocabulary: %v", domain.ErrLoad, err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var example, translation sql.NullString
		if err := rows.Scan(&e.German, &e.English, &example, &translation); err != nil {
			return nil, fmt.Errorf("%w: scan vocabulary row: %v", domain.ErrLoad, err)
		}
		e.ExampleSentence = example.String
		e.ExampleSentenceTranslation = translation.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read vocabulary rows: %v", domain.ErrLoad, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: vocabulary table is empty", domain.ErrLoad)
	}

	repository.ForwardFillExamples(entries)
	return entries, nil
}
