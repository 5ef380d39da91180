package equation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomial_Reduced(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		want string
	}{
		{
			name: "terms ordered by ascending exponent",
			p:    Polynomial{0: 4, 1: 4, 2: -9.3},
			want: "4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0",
		},
		{
			name: "negative leading term has no space after the sign",
			p:    Polynomial{0: -5, 1: 3},
			want: "-5 * X^0 + 3 * X^1 = 0",
		},
		{
			name: "zero coefficients are skipped",
			p:    Polynomial{0: 2, 1: 0, 2: 1},
			want: "2 * X^0 + 1 * X^2 = 0",
		},
		{
			name: "synthetic constant appended when the constant vanished",
			p:    Polynomial{0: 0, 1: 0, 2: 1},
			want: "1 * X^2 + 1 * X^0 = 0",
		},
		{
			name: "missing constant key behaves like a zero constant",
			p:    Polynomial{1: -2},
			want: "-2 * X^1 + 1 * X^0 = 0",
		},
		{
			name: "large coefficient stays in fixed-point notation",
			p:    Polynomial{0: 1000000, 1: 2500000},
			want: "1000000 * X^0 + 2500000 * X^1 = 0",
		},
		{
			name: "tiny coefficient stays in fixed-point notation",
			p:    Polynomial{0: 0.00001, 2: 1},
			want: "0.00001 * X^0 + 1 * X^2 = 0",
		},
		{
			name: "all zero coefficients",
			p:    Polynomial{0: 0, 1: 0, 2: 0},
			want: "0 = 0",
		},
		{
			name: "empty mapping",
			p:    Polynomial{},
			want: "0 = 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Reduced())
		})
	}
}
