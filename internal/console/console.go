package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	correctStyle   = color.New(color.FgGreen, color.Bold).SprintFunc()
	incorrectStyle = color.New(color.FgRed).SprintFunc()
	noticeStyle    = color.New(color.FgYellow).SprintFunc()
	questionStyle  = color.New(color.Bold).SprintFunc()
)

// Correct styles a message for a right answer
func Correct(text string) string { return correctStyle(text) }

// Incorrect styles a message for a wrong answer
func Incorrect(text string) string { return incorrectStyle(text) }

// Notice styles warnings such as invalid input
func Notice(text string) string { return noticeStyle(text) }

// Question styles a question prompt
func Question(text string) string { return questionStyle(text) }

type readResult struct {
	line string
	err  error
}

// Console reads lines from in and writes lines to out.
// Reads are served by one background goroutine so a pending Prompt can be
// abandoned when its context is cancelled.
type Console struct {
	in    io.Reader
	out   io.Writer
	lines chan readResult
	once  sync.Once
}

// New creates a new console
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines: make(chan readResult),
	}
}

// WriteLine prints text followed by a line break
func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

// Prompt prints text and waits for the next input line.
// It returns io.EOF once input is exhausted.
func (c *Console) Prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(c.out, text)
	c.once.Do(func() { go c.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return r.line, r.err
	}
}

// readLines feeds c.lines until input ends. Lines have no length limit so
// oversized input reaches the caller instead of aborting the reader.
func (c *Console) readLines() {
	defer close(c.lines)

	reader := bufio.NewReader(c.in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" && (err == nil || errors.Is(err, io.EOF)) {
			c.lines <- readResult{line: strings.TrimRight(line, "\r\n")}
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			c.lines <- readResult{err: fmt.Errorf("read input: %w", err)}
			return
		}
	}
}
