package service

import "context"

// Console is the line-oriented user interaction boundary
type Console interface {
	WriteLine(text string)
	// Prompt writes text without a line break and blocks for one line of input
	Prompt(ctx context.Context, text string) (string, error)
}
