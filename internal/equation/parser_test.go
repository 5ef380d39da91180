package equation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLeft  Polynomial
		wantRight Polynomial
	}{
		{
			name:      "full form with decimal coefficient",
			input:     "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0",
			wantLeft:  Polynomial{0: 5, 1: 4, 2: -9.3},
			wantRight: Polynomial{0: 1},
		},
		{
			name:      "implicit coefficient defaults to one",
			input:     "X^2 = 0",
			wantLeft:  Polynomial{2: 1},
			wantRight: Polynomial{},
		},
		{
			name:      "implicit negative coefficient",
			input:     "-X^2 + X^1 = X^0",
			wantLeft:  Polynomial{2: -1, 1: 1},
			wantRight: Polynomial{0: 1},
		},
		{
			name:      "missing multiplication marker",
			input:     "4X^1 + 2 = 0",
			wantLeft:  Polynomial{1: 4},
			wantRight: Polynomial{},
		},
		{
			name:      "lowercase variable",
			input:     "3 * x^2 = 1 * x^0",
			wantLeft:  Polynomial{2: 3},
			wantRight: Polynomial{0: 1},
		},
		{
			name:      "terms sharing an exponent accumulate",
			input:     "2 * X^1 + 3 * X^1 - 1 * X^1 = 0",
			wantLeft:  Polynomial{1: 4},
			wantRight: Polynomial{},
		},
		{
			name:      "whitespace is insignificant",
			input:     "  5*X^0+4  *X^1   =1*X^0 ",
			wantLeft:  Polynomial{0: 5, 1: 4},
			wantRight: Polynomial{0: 1},
		},
		{
			name:      "side without matching terms is all zero",
			input:     "hello = X^1",
			wantLeft:  Polynomial{},
			wantRight: Polynomial{1: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLeft, got.Left)
			assert.Equal(t, tt.wantRight, got.Right)
		})
	}
}

func TestParse_FormatError(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantReason string
	}{
		{
			name:       "missing separator",
			input:      "5 * X^2",
			wantReason: "missing '=' separator",
		},
		{
			name:       "multiple separators",
			input:      "X^1 = X^0 = 0",
			wantReason: "multiple '=' separators",
		},
		{
			name:       "empty right side",
			input:      "X^1 = ",
			wantReason: "empty side",
		},
		{
			name:       "empty left side",
			input:      "= X^1",
			wantReason: "empty side",
		},
		{
			name:       "only whitespace",
			input:      "   ",
			wantReason: "missing '=' separator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.input, formatErr.Input)
			assert.Equal(t, tt.wantReason, formatErr.Reason)
		})
	}
}
