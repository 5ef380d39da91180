package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snishiyama/polysolve/internal/cli"
)

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [equation]",
		Short: "Reduce and solve one equation, e.g. \"5 * X^0 + 4 * X^1 = 4 * X^0\"",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				// No argument: take a single line from stdin so the
				// command can be piped into.
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read equation from stdin: %w", err)
				}
				input = strings.TrimSpace(line)
			}
			if input == "" {
				return fmt.Errorf("no equation provided")
			}

			display := cli.NewDisplay(cmd.OutOrStdout(), cfg.Output)
			return cli.RunSolve(input, display)
		},
	}
}
