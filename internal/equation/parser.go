package equation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormatError reports an input string that is not a valid equation.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid equation %q: %s", e.Input, e.Reason)
}

// termPattern matches one term: an optional sign, an optional coefficient,
// an optional multiplication marker, the variable and its exponent.
// The constant term is written with an explicit X^0; bare numbers never match.
var termPattern = regexp.MustCompile(`([+-]?)(\d+(?:\.\d+)?)?\*?[Xx]\^(\d+)`)

// Parse turns a raw equation string into per-side coefficient mappings.
// Whitespace is insignificant. The string must contain exactly one '='
// with a non-empty expression on each side; anything else is a *FormatError.
func Parse(input string) (Equation, error) {
	stripped := strings.Join(strings.Fields(input), "")

	if count := strings.Count(stripped, "="); count != 1 {
		reason := "missing '=' separator"
		if count > 1 {
			reason = "multiple '=' separators"
		}
		return Equation{}, &FormatError{Input: input, Reason: reason}
	}

	sides := strings.SplitN(stripped, "=", 2)
	if sides[0] == "" || sides[1] == "" {
		return Equation{}, &FormatError{Input: input, Reason: "empty side"}
	}

	left, err := parseSide(input, sides[0])
	if err != nil {
		return Equation{}, err
	}
	right, err := parseSide(input, sides[1])
	if err != nil {
		return Equation{}, err
	}

	return Equation{Left: left, Right: right}, nil
}

// parseSide accumulates the signed coefficients of every term on one side.
// Terms sharing an exponent are summed. A side without any term yields an
// empty, implicitly all-zero mapping.
func parseSide(input, side string) (Polynomial, error) {
	p := Polynomial{}
	for _, match := range termPattern.FindAllStringSubmatch(side, -1) {
		coefficient := 1.0
		if match[2] != "" {
			// The pattern only admits digits and a single dot.
			coefficient, _ = strconv.ParseFloat(match[2], 64)
		}
		if match[1] == "-" {
			coefficient = -coefficient
		}

		exponent, err := strconv.Atoi(match[3])
		if err != nil {
			return nil, &FormatError{Input: input, Reason: fmt.Sprintf("exponent %s is out of range", match[3])}
		}

		p[exponent] += coefficient
	}
	return p, nil
}
