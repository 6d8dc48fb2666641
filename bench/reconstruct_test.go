// Package bench_test exercises Reconstruct: the rotation at the synthetic
// node, endpoint splicing, open/closed input tolerance, and the
// ErrMalformedTour taxonomy.
package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbench/bench"
)

func TestReconstruct_RotatesAtSynthetic(t *testing.T) {
	// Raw cycle [C D SYN A B] reads as start→A→B→C→D→end.
	path, err := bench.Reconstruct([]string{"C", "D", "SYN", "A", "B"}, "SYN", "S", "E")
	require.NoError(t, err)
	require.Equal(t, []string{"S", "A", "B", "C", "D", "E"}, path)
}

func TestReconstruct_SyntheticFirstAndLast(t *testing.T) {
	// Synthetic leading: nothing to rotate.
	path, err := bench.Reconstruct([]string{"SYN", "B", "C", "D"}, "SYN", "A", "E")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, path)

	// Synthetic trailing: the whole tour precedes it.
	path, err = bench.Reconstruct([]string{"B", "C", "D", "SYN"}, "SYN", "A", "E")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, path)
}

func TestReconstruct_AcceptsClosedTour(t *testing.T) {
	// Closed form (first label repeated) is normalized before rotation.
	path, err := bench.Reconstruct([]string{"C", "SYN", "B", "C"}, "SYN", "A", "E")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "E"}, path)
}

func TestReconstruct_LengthInvariant(t *testing.T) {
	// |path| == |open raw| + 1 == original matrix order.
	raw := []string{"x1", "x2", "SYN", "x3"}

	path, err := bench.Reconstruct(raw, "SYN", "s", "e")
	require.NoError(t, err)
	require.Len(t, path, len(raw)+1)
	require.Equal(t, "s", path[0])
	require.Equal(t, "e", path[len(path)-1])
	require.NotContains(t, path, "SYN")
}

func TestReconstruct_Malformed(t *testing.T) {
	// Missing synthetic label.
	_, err := bench.Reconstruct([]string{"B", "C", "D"}, "SYN", "A", "E")
	require.ErrorIs(t, err, bench.ErrMalformedTour)

	// Synthetic label twice, mid-tour.
	_, err = bench.Reconstruct([]string{"SYN", "B", "SYN", "C"}, "SYN", "A", "E")
	require.ErrorIs(t, err, bench.ErrMalformedTour)

	// Synthetic label at both ends: closed-form normalization must not
	// swallow the duplicate — a tour may close on any label except the
	// synthetic one.
	_, err = bench.Reconstruct([]string{"SYN", "B", "SYN"}, "SYN", "A", "E")
	require.ErrorIs(t, err, bench.ErrMalformedTour)

	// Endpoint re-introduced into the raw tour.
	_, err = bench.Reconstruct([]string{"SYN", "A", "B"}, "SYN", "A", "E")
	require.ErrorIs(t, err, bench.ErrMalformedTour)

	// Duplicate intermediate node.
	_, err = bench.Reconstruct([]string{"SYN", "B", "B"}, "SYN", "A", "E")
	require.ErrorIs(t, err, bench.ErrMalformedTour)

	// Empty tour.
	_, err = bench.Reconstruct(nil, "SYN", "A", "E")
	require.ErrorIs(t, err, bench.ErrMalformedTour)
}

func TestReconstruct_BoundarySingleIntermediate(t *testing.T) {
	// 3-label boundary: the collapsed matrix holds one real node + SYN, and
	// any tour reconstructs to a path of length 3.
	path, err := bench.Reconstruct([]string{"B", "SYN"}, "SYN", "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
}
