// Package bench_test provides lightweight helpers shared across the
// *_test.go files in this package: a dense-matrix builder over the public
// lvlath constructor and a couple of stub solvers implementing the
// bench.Solver contract.
package bench_test

import (
	"testing"

	"github.com/lvlath/go/matrix"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbench/bench"
)

// nsims3 is the canonical trial budget used across scenario tests.
const nsims3 = 3

// mustDense builds a *matrix.Dense from row data, failing the test on any
// shape error.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()

	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i := range rows {
		require.Len(t, rows[i], len(rows[0]))
		for j := range rows[i] {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}

	return m
}

// fiveCity is the literal 5×5 symmetric scenario matrix over labels
// {A,B,C,D,E} used by the end-to-end tests.
func fiveCity(t *testing.T) (*matrix.Dense, []string) {
	t.Helper()

	m := mustDense(t, [][]float64{
		{0, 2, 4, 6, 8},
		{2, 0, 2, 4, 6},
		{4, 2, 0, 2, 4},
		{6, 4, 2, 0, 2},
		{8, 6, 4, 2, 0},
	})

	return m, []string{"A", "B", "C", "D", "E"}
}

// constSolver returns a Solver that always reports the given tour and
// length, ignoring the matrix — the deterministic stub used by the
// scenario tests.
func constSolver(length float64, tour []string) bench.Solver {
	return func(_ matrix.Matrix, _ []string) (float64, []string, error) {
		out := make([]string, len(tour))
		copy(out, tour)

		return length, out, nil
	}
}

// identitySolver returns each label once, in matrix order, with the given
// length — a cheap feasible stub when the exact tour does not matter.
func identitySolver(length float64) bench.Solver {
	return func(_ matrix.Matrix, labels []string) (float64, []string, error) {
		out := make([]string, len(labels))
		copy(out, labels)

		return length, out, nil
	}
}
