package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"flashcards/internal/console"
	"flashcards/internal/domain"
	"flashcards/internal/service"

	"go.uber.org/zap"
)

// Farewell is printed once when the session ends
const Farewell = "\n\n***** THANKS FOR PLAYING! ******"

// ErrTerminated is returned when a round is requested after shutdown
var ErrTerminated = errors.New("session terminated")

// State is the lifecycle state of a session
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Stats is the in-memory tally of a session. Skipped rounds had unusable input.
type Stats struct {
	Rounds    int
	Correct   int
	Incorrect int
	Skipped   int
}

// Answered returns the number of rounds that received a verdict
func (s Stats) Answered() int {
	return s.Correct + s.Incorrect
}

// maxEchoedInput caps how much of an invalid answer is repeated back
const maxEchoedInput = 20

// Loop drives quiz rounds until it is interrupted
type Loop struct {
	store     *service.VocabularyStore
	builder   *service.QuestionBuilder
	evaluator *service.AnswerEvaluator
	presenter *service.ExamplePresenter
	console   service.Console
	rng       *rand.Rand
	delay     time.Duration
	logger    *zap.Logger

	state State
	stats Stats
}

// NewLoop creates a running session over store. All randomness comes from rng.
func NewLoop(
	store *service.VocabularyStore,
	con service.Console,
	rng *rand.Rand,
	delay time.Duration,
	logger *zap.Logger,
) *Loop {
	return &Loop{
		store:     store,
		builder:   service.NewQuestionBuilder(rng, service.NewDistractorSelector(rng), logger),
		evaluator: service.NewAnswerEvaluator(),
		presenter: service.NewExamplePresenter(con),
		console:   con,
		rng:       rng,
		delay:     delay,
		logger:    logger,
		state:     StateRunning,
	}
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Stats returns the tally so far
func (l *Loop) Stats() Stats {
	return l.stats
}

// Run plays rounds until ctx is cancelled or input ends, then terminates the
// session. Interrupts are not errors; any other failure is returned as is.
func (l *Loop) Run(ctx context.Context) error {
	for l.state == StateRunning {
		if err := l.PlayRound(ctx); err != nil {
			if l.interrupted(ctx, err) {
				l.Interrupt()
				return nil
			}
			return err
		}

		if err := l.pause(ctx); err != nil {
			l.Interrupt()
			return nil
		}
	}
	return nil
}

// PlayRound asks one question, reports the verdict and shows the example
func (l *Loop) PlayRound(ctx context.Context) error {
	if l.state != StateRunning {
		return ErrTerminated
	}

	direction := domain.Directions[l.rng.Intn(len(domain.Directions))]
	q, err := l.builder.Build(l.store, direction)
	if err != nil {
		return fmt.Errorf("build question: %w", err)
	}

	l.console.WriteLine(console.Question(q.Prompt))
	for i, option := range q.Options {
		l.console.WriteLine(fmt.Sprintf("(%d) %s", i+1, option))
	}

	input, err := l.console.Prompt(ctx, choicePrompt(len(q.Options)))
	if err != nil {
		return err
	}
	l.stats.Rounds++

	if err := l.answer(q, input); err != nil {
		return err
	}

	return l.presenter.Present(ctx, q.Entry)
}

// Interrupt moves the session to Terminated and says goodbye. Repeated calls are no-ops.
func (l *Loop) Interrupt() {
	if l.state == StateTerminated {
		return
	}
	l.state = StateTerminated

	l.logger.Info("Session terminated",
		zap.Int("rounds", l.stats.Rounds),
		zap.Int("correct", l.stats.Correct),
		zap.Int("incorrect", l.stats.Incorrect),
		zap.Int("skipped", l.stats.Skipped),
	)

	l.console.WriteLine(Farewell)
	l.console.WriteLine(fmt.Sprintf("You answered %d of %d questions correctly.", l.stats.Correct, l.stats.Answered()))
}

func (l *Loop) answer(q *domain.Question, input string) error {
	choice, err := l.evaluator.ParseChoice(input, len(q.Options))
	if errors.Is(err, domain.ErrInvalidChoice) {
		l.stats.Skipped++
		l.logger.Debug("Invalid choice", zap.Int("input_length", len(input)))
		l.console.WriteLine(console.Notice(fmt.Sprintf(
			"Invalid choice %q: enter a number between 1 and %d.", echo(input), len(q.Options))))
		return nil
	}
	if err != nil {
		return err
	}

	verdict, err := l.evaluator.Evaluate(q, choice)
	if err != nil {
		return err
	}

	if verdict.Correct {
		l.stats.Correct++
		l.console.WriteLine(console.Correct("That is correct!"))
	} else {
		l.stats.Incorrect++
		l.console.WriteLine(console.Incorrect("Sorry, the correct answer is " + verdict.CorrectAnswer))
	}
	return nil
}

// interrupted reports whether err ends the session rather than failing it.
// Closed input counts as the user walking away.
func (l *Loop) interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, io.EOF)
}

func (l *Loop) pause(ctx context.Context) error {
	if l.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// echo trims input for display, shortening it to maxEchoedInput runes
func echo(input string) string {
	input = strings.TrimSpace(input)
	runes := []rune(input)
	if len(runes) <= maxEchoedInput {
		return input
	}
	return string(runes[:maxEchoedInput]) + "..."
}

func choicePrompt(n int) string {
	numbers := make([]string, n)
	for i := range numbers {
		numbers[i] = fmt.Sprint(i + 1)
	}
	return fmt.Sprintf("Enter the correct option (%s): ", strings.Join(numbers, "/"))
}
