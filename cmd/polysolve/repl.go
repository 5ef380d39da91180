package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/snishiyama/polysolve/internal/bootstrap"
	"github.com/snishiyama/polysolve/internal/cli"
)

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Solve equations interactively; exit with \"exit\", \"quit\" or Ctrl-D",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			display := cli.NewDisplay(cmd.OutOrStdout(), cfg.Output)
			repl := cli.NewREPL(cmd.InOrStdin(), display, cfg.REPL)

			return bootstrap.Run(cmd.Context(), func(ctx context.Context) error {
				return repl.Run(ctx, repl)
			})
		},
	}
}
