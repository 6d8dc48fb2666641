// Package bench - long-form output tables.
//
// Result exposes three logical tables for the reporting/plotting layer:
// per-method best rows, the global-best routes in long form, and the
// unfiltered distribution. All three are derived views; emitting them twice
// from the same Result yields identical slices.

package bench

import "sort"

// BestRow is one row of the best-performance table: per-method trials
// filtered to that method's tied minima.
type BestRow struct {
	Method string
	Trial  int
	Length float64
}

// RouteRow is one row of the best-routes table: a single stop of a
// global-best path in long form. Method is carried alongside the trial
// index because trial indices are only unique per method.
type RouteRow struct {
	Method   string
	Trial    int
	Position int
	Label    string
}

// DistributionRow is one row of the full distribution table.
type DistributionRow struct {
	Trial  int
	Method string
	Length float64
}

// BestTable emits the best-performance table, ordered by method name and
// then trial index for stable output across runs.
//
// Complexity: O(B log B) over B best rows.
func (r Result) BestTable() []BestRow {
	rows := make([]BestRow, 0, len(r.BestByMethod))

	var (
		method string
		t      Trial
	)
	for method = range r.BestByMethod {
		for _, t = range r.BestByMethod[method] {
			rows = append(rows, BestRow{Method: t.Method, Trial: t.Index, Length: t.Length})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Method != rows[j].Method {
			return rows[i].Method < rows[j].Method
		}

		return rows[i].Trial < rows[j].Trial
	})

	return rows
}

// RouteTable emits every global-best path in long form: one row per stop,
// keyed by (method, trial, position). Trials keep their aggregation order;
// every tied path is emitted — picking a single winner is the consumer's
// decision.
//
// Complexity: O(P·n) over P tied paths of n stops.
func (r Result) RouteTable() []RouteRow {
	var rows []RouteRow

	var (
		t   Trial
		pos int
	)
	for _, t = range r.GlobalBest {
		for pos = 0; pos < len(t.Path); pos++ {
			rows = append(rows, RouteRow{
				Method:   t.Method,
				Trial:    t.Index,
				Position: pos,
				Label:    t.Path[pos],
			})
		}
	}

	return rows
}

// DistributionTable emits the complete unfiltered trial table in production
// order.
//
// Complexity: O(T).
func (r Result) DistributionTable() []DistributionRow {
	rows := make([]DistributionRow, 0, len(r.Distribution))

	for _, o := range r.Distribution {
		rows = append(rows, DistributionRow{Trial: o.Trial, Method: o.Method, Length: o.Length})
	}

	return rows
}
