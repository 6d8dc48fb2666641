// Package bench_test - end-to-end pipeline scenarios over stub solvers.
package bench_test

import (
	"testing"

	"github.com/lvlath/go/matrix"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbench/bench"
)

// TestEvaluate_LiteralScenario is the canonical stub scenario: a 5×5
// symmetric matrix over {A..E}, start=A, end=E, nsims=3, one method whose
// stub always returns the tour [SYN,B,C,D] at length 10.
func TestEvaluate_LiteralScenario(t *testing.T) {
	m, labels := fiveCity(t)
	syn := bench.SyntheticLabel("A", "E")
	reg := bench.Registry{"greedy": constSolver(10, []string{syn, "B", "C", "D"})}

	res, err := bench.Evaluate(m, labels, "A", "E", []string{"greedy"}, nsims3, reg)
	require.NoError(t, err)

	// best_by_method["greedy"] holds 3 tied trials.
	require.Len(t, res.BestByMethod["greedy"], nsims3)
	for i, tr := range res.BestByMethod["greedy"] {
		require.Equal(t, i+1, tr.Index)
		require.Equal(t, 10.0, tr.Length)
	}

	// Every global-best trial reconstructs to [A B C D E].
	require.Len(t, res.GlobalBest, nsims3)
	for _, tr := range res.GlobalBest {
		require.Equal(t, []string{"A", "B", "C", "D", "E"}, tr.Path)
	}

	// The distribution has exactly 3 rows, all at length 10.
	require.Len(t, res.Distribution, nsims3)
	for _, o := range res.Distribution {
		require.Equal(t, "greedy", o.Method)
		require.Equal(t, 10.0, o.Length)
	}
}

// TestEvaluate_TwoMethods verifies per-method separation and the global
// minimum across methods.
func TestEvaluate_TwoMethods(t *testing.T) {
	m, labels := fiveCity(t)
	syn := bench.SyntheticLabel("A", "E")

	reg := bench.Registry{
		"good": constSolver(8, []string{"B", syn, "C", "D"}),
		"poor": constSolver(19, []string{syn, "D", "C", "B"}),
	}

	res, err := bench.Evaluate(m, labels, "A", "E", []string{"good", "poor"}, 2, reg)
	require.NoError(t, err)

	require.Len(t, res.BestByMethod, 2)
	require.Len(t, res.GlobalBest, 2) // both "good" trials tie at 8
	for _, tr := range res.GlobalBest {
		require.Equal(t, "good", tr.Method)
		require.Equal(t, []string{"A", "C", "D", "B", "E"}, tr.Path)
	}
	require.Len(t, res.Worst, 2) // both "poor" trials tie at 19
	require.Len(t, res.Distribution, 4)
}

// TestEvaluate_BoundaryThreeLabels runs the smallest legal instance through
// the whole pipeline.
func TestEvaluate_BoundaryThreeLabels(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 5},
		{2, 0, 3},
		{4, 6, 0},
	})
	labels := []string{"A", "B", "C"}
	syn := bench.SyntheticLabel("A", "C")

	reg := bench.Registry{"stub": constSolver(4, []string{"B", syn})}

	res, err := bench.Evaluate(m, labels, "A", "C", []string{"stub"}, 1, reg)
	require.NoError(t, err)
	require.Len(t, res.GlobalBest, 1)
	require.Equal(t, []string{"A", "B", "C"}, res.GlobalBest[0].Path)
}

// TestEvaluate_MalformedSolverTourAborts: a stub that never emits the
// synthetic label is caught by the runner's feasibility check before
// reconstruction can even fail.
func TestEvaluate_MalformedSolverTour(t *testing.T) {
	m, labels := fiveCity(t)

	reg := bench.Registry{"bad": constSolver(1, []string{"B", "C", "D", "D"})}

	_, err := bench.Evaluate(m, labels, "A", "E", []string{"bad"}, 1, reg)
	require.ErrorIs(t, err, bench.ErrSolverFailed)
}

// TestEvaluate_RandomizedStub asserts only distributional properties for a
// non-deterministic solver: trial count, finite non-negative lengths, and
// valid reconstructed paths — never exact values.
func TestEvaluate_RandomizedStub(t *testing.T) {
	m, labels := fiveCity(t)
	syn := bench.SyntheticLabel("A", "E")

	var flip bool
	noisy := func(_ matrix.Matrix, _ []string) (float64, []string, error) {
		flip = !flip
		if flip {
			return 11, []string{syn, "B", "C", "D"}, nil
		}

		return 13.5, []string{syn, "D", "B", "C"}, nil
	}

	res, err := bench.Evaluate(m, labels, "A", "E", []string{"noisy"}, 4, bench.Registry{"noisy": noisy})
	require.NoError(t, err)

	require.Len(t, res.Distribution, 4)
	for _, o := range res.Distribution {
		require.GreaterOrEqual(t, o.Length, 0.0)
	}
	for _, tr := range res.GlobalBest {
		require.Equal(t, "A", tr.Path[0])
		require.Equal(t, "E", tr.Path[len(tr.Path)-1])
		require.Len(t, tr.Path, len(labels))
	}
}
