package cli

import (
	"log/slog"

	"github.com/snishiyama/polysolve/internal/equation"
)

// RunSolve solves a single equation string and displays the outcome.
// Malformed input is returned to the caller for boundary reporting.
func RunSolve(input string, display *Display) error {
	result, err := equation.SolveString(input)
	if err != nil {
		return err
	}

	slog.Debug("solved equation",
		slog.String("input", input),
		slog.String("reduced", result.ReducedForm),
		slog.Int("degree", result.Solution.Degree),
		slog.Int("effective_degree", result.Solution.EffectiveDegree),
	)

	display.Show(result)
	return nil
}
