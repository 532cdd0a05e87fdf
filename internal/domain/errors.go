package domain

import "errors"

var (
	// ErrLoad is returned when the vocabulary source cannot produce a table
	ErrLoad = errors.New("failed to load vocabulary")
	// ErrInsufficientData is returned when there are too few entries to build a question
	ErrInsufficientData = errors.New("insufficient vocabulary data")
	// ErrIndexOutOfRange is returned for lookups outside the store
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidChoice is returned when user input is not a valid option number
	ErrInvalidChoice = errors.New("invalid option choice")
	// ErrInvalidEntry is returned for entries missing German or English text
	ErrInvalidEntry = errors.New("entry must have German and English text")
	// ErrUnknownField is returned when a field is neither German nor English
	ErrUnknownField = errors.New("unknown field")
)
