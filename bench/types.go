package bench

import "github.com/lvlath/go/matrix"

// Solver is the black-box heuristic contract: given a distance matrix and
// the labels naming its rows/columns (in index order), return a tour length
// and the tour as an ordered label sequence visiting every label exactly
// once. The tour may be open (len == n) or closed (len == n+1 with the
// first label repeated at the end).
//
// A Solver is assumed non-deterministic and independent across invocations;
// the runner imposes no seeding and makes no reproducibility guarantee.
type Solver func(dist matrix.Matrix, labels []string) (float64, []string, error)

// Registry maps a method identifier to its Solver. New heuristics plug in
// without any change to the runner or the aggregator.
type Registry map[string]Solver

// Trial is one execution of one heuristic method. (Method, Index) uniquely
// identifies a trial; Index is 1-based and comparable across methods.
type Trial struct {
	// Method is the registry identifier of the heuristic.
	Method string

	// Index is the 1-based trial number within the method.
	Index int

	// Length is the tour length reported by the solver (finite, >= 0).
	Length float64

	// RawTour is the solver's tour over the collapsed matrix, containing
	// the synthetic label exactly once.
	RawTour []string

	// Path is the reconstructed real-world path: start first, end last,
	// synthetic label removed. Populated by Evaluate (or by the caller via
	// Reconstruct) before aggregation.
	Path []string
}

// Observation is one row of the full trial distribution: the unfiltered
// (method, trial index, length) record used for downstream statistics.
type Observation struct {
	Method string
	Trial  int
	Length float64
}

// Result is the aggregated outcome of a run. It is a pure derived view:
// recomputing it from the same trials yields an identical value.
type Result struct {
	// BestByMethod holds, per method, every trial whose length ties that
	// method's minimum. Ties are preserved, never broken arbitrarily.
	BestByMethod map[string][]Trial

	// GlobalBest holds every trial whose length ties the minimum across all
	// methods and trials combined; more than one entry means a global tie.
	GlobalBest []Trial

	// Worst holds every trial tying the maximum observed length, for
	// spread/robustness comparisons. Same tie-preserving policy.
	Worst []Trial

	// Distribution is the complete (method, trial, length) table in trial
	// production order — no filtering, no statistics.
	Distribution []Observation
}
