package domain

import "strings"

// AlternativeSeparator joins alternative phrasings stored on separate lines
const AlternativeSeparator = "/ "

// Field names a translatable column of a vocabulary entry
type Field string

const (
	FieldGerman  Field = "german"
	FieldEnglish Field = "english"
)

// Valid reports whether f is a known translatable field
func (f Field) Valid() bool {
	return f == FieldGerman || f == FieldEnglish
}

// Entry represents a single vocabulary row
type Entry struct {
	German                     string
	English                    string
	ExampleSentence            string
	ExampleSentenceTranslation string
}

// Text returns the normalized value of the given field
func (e Entry) Text(f Field) string {
	switch f {
	case FieldGerman:
		return NormalizeText(e.German)
	case FieldEnglish:
		return NormalizeText(e.English)
	}
	return ""
}

// HasExample reports whether the entry carries an example sentence
func (e Entry) HasExample() bool {
	return strings.TrimSpace(e.ExampleSentence) != ""
}

// HasExampleTranslation reports whether the example sentence has a translation
func (e Entry) HasExampleTranslation() bool {
	return strings.TrimSpace(e.ExampleSentenceTranslation) != ""
}

// Validate checks that both translatable fields are filled in
func (e Entry) Validate() error {
	if strings.TrimSpace(e.German) == "" || strings.TrimSpace(e.English) == "" {
		return ErrInvalidEntry
	}
	return nil
}

// NormalizeText renders line-separated alternatives on a single line.
// "Haus\nGebäude" becomes "Haus/ Gebäude".
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", AlternativeSeparator)
}
