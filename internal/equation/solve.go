package equation

import "math"

// RootKind distinguishes real roots from members of a complex pair.
type RootKind int

const (
	RootReal RootKind = iota
	RootComplex
)

// Root is one solution of the equation. Value is set for real roots;
// Re and Im carry the parts of a complex root.
type Root struct {
	Kind  RootKind
	Value float64
	Re    float64
	Im    float64
}

// SolutionKind classifies the outcome of solving the canonical mapping.
type SolutionKind int

const (
	// SolutionUnsolvableDegree marks a nominal degree above 2.
	SolutionUnsolvableDegree SolutionKind = iota
	// SolutionNone marks a contradiction such as "1 * X^0 = 2 * X^0".
	SolutionNone
	// SolutionAllReals marks the identity 0 = 0.
	SolutionAllReals
	SolutionOneRoot
	SolutionTwoRealRoots
	SolutionComplexRoots
)

func (k SolutionKind) String() string {
	switch k {
	case SolutionUnsolvableDegree:
		return "unsolvable_degree"
	case SolutionNone:
		return "no_solution"
	case SolutionAllReals:
		return "all_reals"
	case SolutionOneRoot:
		return "one_root"
	case SolutionTwoRealRoots:
		return "two_real_roots"
	case SolutionComplexRoots:
		return "complex_roots"
	default:
		return "unknown"
	}
}

// Solution is the outcome of solving one canonical mapping.
//
// Degree is the nominal degree: the highest exponent present in the mapping,
// even when its coefficient is zero. EffectiveDegree is the degree actually
// solved once vanishing leading coefficients are discarded. Discriminant is
// set only when the quadratic formula ran.
type Solution struct {
	Degree          int
	EffectiveDegree int
	Kind            SolutionKind
	Roots           []Root
	Discriminant    *float64
}

// Solve classifies the canonical mapping by degree and computes its roots.
// It is total: every mapping yields a Solution.
func Solve(p Polynomial) Solution {
	degree := p.Degree()
	if degree > 2 {
		return Solution{Degree: degree, EffectiveDegree: degree, Kind: SolutionUnsolvableDegree}
	}

	a, b, c := p[2], p[1], p[0]
	if degree == 2 && a != 0 {
		return solveQuadratic(degree, a, b, c)
	}
	// A vanished leading coefficient degrades the equation to the
	// linear/constant branch.
	return solveLinear(degree, b, c)
}

func solveQuadratic(degree int, a, b, c float64) Solution {
	discriminant := b*b - 4*a*c
	s := Solution{Degree: degree, EffectiveDegree: 2, Discriminant: &discriminant}

	switch {
	case discriminant > 0:
		sqrt := math.Sqrt(discriminant)
		s.Kind = SolutionTwoRealRoots
		s.Roots = []Root{
			realRoot((-b + sqrt) / (2 * a)),
			realRoot((-b - sqrt) / (2 * a)),
		}
	case discriminant == 0:
		s.Kind = SolutionOneRoot
		s.Roots = []Root{realRoot(-b / (2 * a))}
	default:
		re := normalizeZero(-b / (2 * a))
		im := math.Abs(math.Sqrt(-discriminant) / (2 * a))
		s.Kind = SolutionComplexRoots
		s.Roots = []Root{
			{Kind: RootComplex, Re: re, Im: im},
			{Kind: RootComplex, Re: re, Im: -im},
		}
	}
	return s
}

func solveLinear(degree int, b, c float64) Solution {
	if b == 0 {
		kind := SolutionNone
		if c == 0 {
			kind = SolutionAllReals
		}
		return Solution{Degree: degree, EffectiveDegree: 0, Kind: kind}
	}

	return Solution{
		Degree:          degree,
		EffectiveDegree: 1,
		Kind:            SolutionOneRoot,
		Roots:           []Root{realRoot(-c / b)},
	}
}

func realRoot(value float64) Root {
	return Root{Kind: RootReal, Value: normalizeZero(value)}
}

// normalizeZero folds -0 into 0 so roots never render with a stray sign.
func normalizeZero(value float64) float64 {
	if value == 0 {
		return 0
	}
	return value
}
