// Package cli implements the terminal front-end: result display, the
// one-shot solve command and the interactive loop.
package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"

	"github.com/snishiyama/polysolve/internal/config"
	"github.com/snishiyama/polysolve/internal/equation"
)

// Display writes solve results to a terminal.
type Display struct {
	out       io.Writer
	precision int

	bold *color.Color
	good *color.Color
	warn *color.Color
	bad  *color.Color
}

// NewDisplay creates a Display writing to out. The precision from cfg only
// affects complex root parts; real roots print at full precision.
func NewDisplay(out io.Writer, cfg config.OutputConfig) *Display {
	d := &Display{
		out:       out,
		precision: cfg.ComplexPrecision,
		bold:      color.New(color.Bold),
		good:      color.New(color.FgGreen),
		warn:      color.New(color.FgYellow),
		bad:       color.New(color.FgRed),
	}
	if !cfg.Color {
		for _, c := range []*color.Color{d.bold, d.good, d.warn, d.bad} {
			c.DisableColor()
		}
	}
	return d
}

// Show prints the reduced form, the degree and the solution of one result.
func (d *Display) Show(result equation.Result) {
	fmt.Fprintf(d.out, "%s %s\n", d.bold.Sprint("Reduced form:"), result.ReducedForm)
	fmt.Fprintf(d.out, "%s %d\n", d.bold.Sprint("Polynomial degree:"), result.Solution.Degree)

	s := result.Solution
	switch s.Kind {
	case equation.SolutionUnsolvableDegree:
		fmt.Fprintln(d.out, d.warn.Sprint("The polynomial degree is strictly greater than 2, I can't solve."))
	case equation.SolutionAllReals:
		fmt.Fprintln(d.out, d.good.Sprint("All real numbers are solutions."))
	case equation.SolutionNone:
		fmt.Fprintln(d.out, d.warn.Sprint("No solution."))
	case equation.SolutionOneRoot:
		if s.Discriminant != nil {
			fmt.Fprintln(d.out, "Discriminant is zero, the solution is:")
		} else {
			fmt.Fprintln(d.out, "The solution is:")
		}
		fmt.Fprintln(d.out, d.good.Sprint(d.FormatRoot(s.Roots[0])))
	case equation.SolutionTwoRealRoots:
		fmt.Fprintln(d.out, "Discriminant is strictly positive, the two solutions are:")
		for _, root := range s.Roots {
			fmt.Fprintln(d.out, d.good.Sprint(d.FormatRoot(root)))
		}
	case equation.SolutionComplexRoots:
		fmt.Fprintln(d.out, "Discriminant is strictly negative, the two complex solutions are:")
		for _, root := range s.Roots {
			fmt.Fprintln(d.out, d.good.Sprint(d.FormatRoot(root)))
		}
	}
}

// Prompt prints a bold input prompt without a trailing newline.
func (d *Display) Prompt(text string) {
	_, _ = d.bold.Fprint(d.out, text)
}

// ShowError reports a solve failure as a single message.
func (d *Display) ShowError(err error) {
	fmt.Fprintf(d.out, "%s %v\n", d.bad.Sprint("Error:"), err)
}

// FormatRoot renders one root. Complex roots print as "re + imi" with the
// configured number of decimals; real roots keep full precision.
func (d *Display) FormatRoot(root equation.Root) string {
	if root.Kind == equation.RootComplex {
		sign := "+"
		if root.Im < 0 {
			sign = "-"
		}
		return fmt.Sprintf("%.*f %s %.*fi", d.precision, root.Re, sign, d.precision, math.Abs(root.Im))
	}
	return strconv.FormatFloat(root.Value, 'g', -1, 64)
}
