package main

import (
	"github.com/spf13/cobra"

	"github.com/snishiyama/polysolve/internal/batch"
)

func newBatchCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Solve a YAML list of equations and emit a YAML report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := batch.ReadJobs(args[0])
			if err != nil {
				return err
			}

			results := batch.Run(jobs)
			if outputFile != "" {
				return batch.WriteReportFile(outputFile, results)
			}
			return batch.WriteReport(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}
