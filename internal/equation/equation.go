// Package equation parses textual polynomial equations of degree 0-2,
// reduces them to a canonical form and computes their roots.
package equation

// Polynomial maps an exponent to its coefficient. Missing exponents are
// implicitly zero.
type Polynomial map[int]float64

// Equation holds the per-side coefficient mappings of a parsed equation.
type Equation struct {
	Left  Polynomial
	Right Polynomial
}

// Degree returns the highest exponent present in the mapping, regardless of
// whether its coefficient is zero.
func (p Polynomial) Degree() int {
	degree := 0
	for exponent := range p {
		if exponent > degree {
			degree = exponent
		}
	}
	return degree
}

// Reduce moves every term to the left-hand side and returns the canonical
// mapping of the equation written as P(x) = 0. The constant exponent is
// always present in the result, even when neither side mentions it.
func (eq Equation) Reduce() Polynomial {
	canonical := Polynomial{0: 0}
	for exponent, coefficient := range eq.Left {
		canonical[exponent] += coefficient
	}
	for exponent, coefficient := range eq.Right {
		canonical[exponent] -= coefficient
	}
	return canonical
}

// Result bundles everything a display needs for one solved equation.
type Result struct {
	Input       string
	ReducedForm string
	Solution    Solution
}

// SolveString parses, reduces and solves a single equation string.
// It keeps no state across calls.
func SolveString(input string) (Result, error) {
	eq, err := Parse(input)
	if err != nil {
		return Result{}, err
	}

	canonical := eq.Reduce()
	return Result{
		Input:       input,
		ReducedForm: canonical.Reduced(),
		Solution:    Solve(canonical),
	}, nil
}
