// Package bootstrap provides lifecycle helpers for interactive commands.
package bootstrap

import (
	"context"
	"os"
	"os/signal"
)

// Run executes fn under a context that is cancelled on OS interrupt.
// An interrupt ends the run cleanly with a nil error; otherwise the error
// of fn is returned.
func Run(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- fn(ctx)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}
