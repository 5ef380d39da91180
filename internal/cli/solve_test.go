package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snishiyama/polysolve/internal/equation"
)

func TestRunSolve(t *testing.T) {
	t.Run("displays the result", func(t *testing.T) {
		var out bytes.Buffer
		err := RunSolve("X^2 = 0", newTestDisplay(&out))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Reduced form: 1 * X^2 + 1 * X^0 = 0")
		assert.Contains(t, out.String(), "Discriminant is zero, the solution is:")
	})

	t.Run("returns the parse error without displaying anything", func(t *testing.T) {
		var out bytes.Buffer
		err := RunSolve("X^2", newTestDisplay(&out))

		require.Error(t, err)
		var formatErr *equation.FormatError
		assert.ErrorAs(t, err, &formatErr)
		assert.Empty(t, out.String())
	})
}
