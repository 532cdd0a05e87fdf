package testutil

import (
	"context"
	"strings"
)

// FakeConsole replays scripted input lines and records everything written.
// Once the script runs out, OnExhausted is called and Prompt blocks until
// the context is cancelled.
type FakeConsole struct {
	Inputs      []string
	Lines       []string
	Prompts     []string
	OnExhausted func()
}

// NewFakeConsole creates a console that answers prompts with inputs in order
func NewFakeConsole(inputs ...string) *FakeConsole {
	return &FakeConsole{Inputs: inputs}
}

func (c *FakeConsole) WriteLine(text string) {
	c.Lines = append(c.Lines, text)
}

func (c *FakeConsole) Prompt(ctx context.Context, text string) (string, error) {
	c.Prompts = append(c.Prompts, text)

	if len(c.Inputs) == 0 {
		if c.OnExhausted != nil {
			c.OnExhausted()
		}
		<-ctx.Done()
		return "", ctx.Err()
	}

	line := c.Inputs[0]
	c.Inputs = c.Inputs[1:]
	return line, nil
}

// Output joins all written lines
func (c *FakeConsole) Output() string {
	return strings.Join(c.Lines, "\n")
}
