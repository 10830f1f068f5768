package menu

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
	apperrors "github.com/jorgecontrerasostos/unitconv/pkg/errors"
	"github.com/jorgecontrerasostos/unitconv/pkg/observability"
)

// State is a node of the menu state machine.
type State int

const (
	StateTop State = iota
	StateCategory
	StateQuit
)

// String returns the state name for log output.
func (s State) String() string {
	switch s {
	case StateTop:
		return "top"
	case StateCategory:
		return "category"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Stats counts what happened during a session.
type Stats struct {
	Conversions    int
	InvalidNumbers int
	UnknownOptions int
}

// Option configures a Controller.
type Option func(*Controller)

// WithTheme sets the output theme. The default is PlainTheme.
func WithTheme(t Theme) Option {
	return func(c *Controller) { c.screen.theme = t }
}

// Controller drives the interactive menu. It is not safe for concurrent use.
type Controller struct {
	in     *bufio.Reader
	screen screen
	logger *log.Logger
	stats  Stats
}

// New creates a controller reading choices from in and writing menus and
// results to out. Parse errors and debug traces go to logger; a nil logger
// discards them.
func New(in io.Reader, out io.Writer, logger *log.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		in:     bufio.NewReader(in),
		screen: screen{w: out, theme: PlainTheme()},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stats returns the counters collected so far.
func (c *Controller) Stats() Stats {
	return c.stats
}

// Run loops over the menus until the user quits or input ends, in which case
// it returns nil. It returns ctx.Err() if ctx is cancelled while waiting for
// input, and the reader's error if reading fails.
func (c *Controller) Run(ctx context.Context) error {
	state := StateTop
	var category convert.Category
	var err error

	for state != StateQuit {
		c.logger.Debug("menu state", "state", state, "category", category)
		switch state {
		case StateTop:
			state, category, err = c.top(ctx)
		case StateCategory:
			state, err = c.category(ctx, category)
		}
		if errors.Is(err, io.EOF) {
			c.logger.Debug("input closed")
			break
		}
		if err != nil {
			return err
		}
	}

	c.logger.Debug("session finished",
		"conversions", c.stats.Conversions,
		"invalid_numbers", c.stats.InvalidNumbers,
		"unknown_options", c.stats.UnknownOptions)
	return nil
}

// top renders the top menu and resolves one selection.
func (c *Controller) top(ctx context.Context) (State, convert.Category, error) {
	c.screen.topMenu()
	choice, err := c.readLine(ctx)
	if err != nil {
		return StateQuit, 0, err
	}

	if strings.EqualFold(choice, "q") {
		return StateQuit, 0, nil
	}
	if cat, ok := categoryForCode(choice); ok {
		return StateCategory, cat, nil
	}

	c.unknownOption(ctx, choice)
	return StateTop, 0, nil
}

// category renders the menu for cat and handles one selection. Every path
// leads back to the top menu.
func (c *Controller) category(ctx context.Context, cat convert.Category) (State, error) {
	c.screen.categoryMenu(cat)
	choice, err := c.readLine(ctx)
	if err != nil {
		return StateQuit, err
	}

	dirs := cat.Directions()
	if choice == backCode(dirs) {
		return StateTop, nil
	}
	dir, ok := directionForCode(dirs, choice)
	if !ok {
		c.unknownOption(ctx, choice)
		return StateTop, nil
	}

	return StateTop, c.convert(ctx, cat, dir)
}

// convert prompts for a number and prints the converted value. A value that
// does not parse is logged and abandoned; it is not returned as an error.
func (c *Controller) convert(ctx context.Context, cat convert.Category, dir convert.Direction) error {
	conv, err := convert.Lookup(cat, dir)
	if err != nil {
		return err
	}

	c.screen.numberPrompt()
	raw, err := c.readLine(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	v, err := convert.ParseValue(raw)
	if err != nil {
		c.stats.InvalidNumbers++
		c.logger.Error(apperrors.UserMessage(err), "input", raw, "code", apperrors.GetCode(err))
		observability.Conversion().OnInvalidInput(ctx, observability.InputKindNumber, raw)
		return nil
	}

	c.screen.result(conv.Apply(v))
	c.stats.Conversions++
	observability.Conversion().OnConversion(ctx, cat.String(), dir.String(), time.Since(start))
	return nil
}

func (c *Controller) unknownOption(ctx context.Context, choice string) {
	c.stats.UnknownOptions++
	c.screen.notFound()
	err := apperrors.New(apperrors.ErrCodeInvalidOption, "option %q not found", choice)
	c.logger.Debug(apperrors.UserMessage(err), "input", choice, "code", apperrors.GetCode(err))
	observability.Conversion().OnInvalidInput(ctx, observability.InputKindOption, choice)
}

type lineResult struct {
	line string
	err  error
}

// readLine returns the next input line with surrounding whitespace removed.
// Lines may be of any length, and a final line without a newline is still
// returned. It returns io.EOF once input is exhausted. The blocking read runs
// in its own goroutine so that cancellation is not held up by a silent
// terminal.
func (c *Controller) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return strings.TrimSpace(r.line), r.err
	}
}
