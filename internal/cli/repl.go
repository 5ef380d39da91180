package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/snishiyama/polysolve/internal/config"
	"github.com/snishiyama/polysolve/internal/equation"
)

// errEnd signals a normal end of the interactive loop.
var errEnd = errors.New("end of session")

// Session runs one interaction of the loop.
type Session interface {
	Session(ctx context.Context) error
}

// REPL manages the interactive solver session.
type REPL struct {
	stdinReader *bufio.Reader
	display     *Display
	prompt      string
}

// NewREPL creates an interactive session reading equations from in.
func NewREPL(in io.Reader, display *Display, cfg config.REPLConfig) *REPL {
	return &REPL{
		stdinReader: bufio.NewReader(in),
		display:     display,
		prompt:      cfg.Prompt,
	}
}

// Run executes sessions until one ends the loop, fails, or the context is
// cancelled.
func (r *REPL) Run(ctx context.Context, session Session) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := session.Session(ctx); err != nil {
			if errors.Is(err, errEnd) {
				return nil
			}
			return err
		}
	}
}

// Session prompts for one equation and displays its solution. Malformed
// input is reported and the loop continues; "exit", "quit" or EOF end it.
func (r *REPL) Session(ctx context.Context) error {
	r.display.Prompt(r.prompt)

	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	line = strings.TrimSpace(line)
	switch line {
	case "":
		return nil
	case "exit", "quit":
		return errEnd
	}

	result, solveErr := equation.SolveString(line)
	if solveErr != nil {
		r.display.ShowError(solveErr)
		return nil
	}
	r.display.Show(result)
	return nil
}
