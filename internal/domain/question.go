package domain

import "fmt"

// Direction selects which field is prompted and which is answered
type Direction int

const (
	GermanToEnglish Direction = iota
	EnglishToGerman
)

// Directions lists every quiz direction
var Directions = []Direction{GermanToEnglish, EnglishToGerman}

// Fields returns the prompted (source) and answered (target) fields
func (d Direction) Fields() (source, target Field) {
	if d == EnglishToGerman {
		return FieldEnglish, FieldGerman
	}
	return FieldGerman, FieldEnglish
}

// Prompt renders the question text for the given source word
func (d Direction) Prompt(source string) string {
	if d == EnglishToGerman {
		return fmt.Sprintf("What is the German word for %s?", source)
	}
	return fmt.Sprintf("What is the meaning of %s?", source)
}

func (d Direction) String() string {
	switch d {
	case GermanToEnglish:
		return "german_to_english"
	case EnglishToGerman:
		return "english_to_german"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Question is a single multiple-choice round
type Question struct {
	Prompt        string
	CorrectAnswer string
	Options       []string
	Direction     Direction
	Entry         Entry
	EntryIndex    int
}

// Verdict is the outcome of evaluating a chosen option
type Verdict struct {
	Correct       bool
	CorrectAnswer string
}
