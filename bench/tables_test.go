// Package bench_test exercises the long-form table emitters.
package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbench/bench"
)

// tabledResult aggregates a small mixed trial set used by the table tests.
func tabledResult(t *testing.T) bench.Result {
	t.Helper()

	res, err := bench.Aggregate([]bench.Trial{
		trial("zeta", 1, 9, "s", "q", "e"),
		trial("zeta", 2, 12),
		trial("alpha", 1, 9, "s", "p", "e"), // global tie with zeta/1
		trial("alpha", 2, 15),
	})
	require.NoError(t, err)

	return res
}

func TestBestTable_SortedAndFiltered(t *testing.T) {
	rows := tabledResult(t).BestTable()

	// Only per-method minima survive; rows ordered by method, then trial.
	require.Equal(t, []bench.BestRow{
		{Method: "alpha", Trial: 1, Length: 9},
		{Method: "zeta", Trial: 1, Length: 9},
	}, rows)
}

func TestRouteTable_LongForm(t *testing.T) {
	rows := tabledResult(t).RouteTable()

	// Two tied global-best paths of 3 stops each → 6 rows, positions
	// 0..2 per (method, trial).
	require.Len(t, rows, 6)
	require.Equal(t, bench.RouteRow{Method: "zeta", Trial: 1, Position: 0, Label: "s"}, rows[0])
	require.Equal(t, bench.RouteRow{Method: "zeta", Trial: 1, Position: 1, Label: "q"}, rows[1])
	require.Equal(t, bench.RouteRow{Method: "alpha", Trial: 1, Position: 1, Label: "p"}, rows[4])
}

func TestDistributionTable_Complete(t *testing.T) {
	rows := tabledResult(t).DistributionTable()

	require.Equal(t, []bench.DistributionRow{
		{Trial: 1, Method: "zeta", Length: 9},
		{Trial: 2, Method: "zeta", Length: 12},
		{Trial: 1, Method: "alpha", Length: 9},
		{Trial: 2, Method: "alpha", Length: 15},
	}, rows)
}
