package xlsx

import (
	"context"
	"fmt"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"github.com/xuri/excelize/v2"
)

// Column headers expected in the first row of the worksheet
const (
	ColumnGerman                     = "German"
	ColumnEnglish                    = "English"
	ColumnExampleSentence            = "Example_Sentence"
	ColumnExampleSentenceTranslation = "Example_Sentence_Translation"
)

var requiredColumns = []string{
	ColumnGerman,
	ColumnEnglish,
	ColumnExampleSentence,
	ColumnExampleSentenceTranslation,
}

// VocabularyFile implements repository.VocabularySource on top of an Excel workbook
type VocabularyFile struct {
	path  string
	sheet string
}

var _ repository.VocabularySource = (*VocabularyFile)(nil)

// NewVocabularyFile creates a workbook source. An empty sheet selects the first worksheet.
func NewVocabularyFile(path, sheet string) *VocabularyFile {
	return &VocabularyFile{path: path, sheet: sheet}
}

// Load reads the worksheet into entries and forward-fills example sentences
func (f *VocabularyFile) Load(ctx context.Context) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wb, err := excelize.OpenFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrLoad, f.path, err)
	}
	defer wb.Close()

	sheet := f.sheet
	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no worksheets", domain.ErrLoad, f.path)
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", domain.ErrLoad, sheet, err)
	}

	entries, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoad, f.path, err)
	}

	repository.ForwardFillExamples(entries)
	return entries, nil
}

// parseRows maps header names to columns and converts the data rows
func parseRows(rows [][]string) ([]domain.Entry, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	entries := make([]domain.Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		e := domain.Entry{
			German:                     cell(row, columns[ColumnGerman]),
			English:                    cell(row, columns[ColumnEnglish]),
			ExampleSentence:            cell(row, columns[ColumnExampleSentence]),
			ExampleSentenceTranslation: cell(row, columns[ColumnExampleSentenceTranslation]),
		}
		// Spreadsheets often carry blank formatted rows at the bottom
		if e.German == "" && e.English == "" {
			continue
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no vocabulary rows")
	}

	return entries, nil
}

// cell returns the trimmed value at idx; excelize drops trailing empty cells
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
