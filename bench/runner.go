// Package bench - the trial runner.
//
// RunTrials executes every requested method against the collapsed matrix a
// fixed number of times and records one Trial per invocation. Solvers are
// opaque strategies behind the Solver contract; the runner imposes no
// seeding, assumes no determinism, and introduces no memory between trials —
// trial i+1 sees exactly the same inputs as trial i.

package bench

import (
	"fmt"
	"math"

	"github.com/lvlath/go/matrix"
)

// RunTrials runs each method in methods exactly nsims times, in method-major
// order (all trials for method i before method i+1), so trial indices are
// comparable per method.
//
// Contracts:
//   - dist square with labels naming its rows; nsims >= 1; methods
//     non-empty; every method id registered in reg.
//   - Each solver result is feasibility-checked: the raw tour must be a
//     permutation of labels (open or closed form) and the length finite and
//     non-negative; a violation is a solver failure.
//   - Policy: the entire run aborts on the first solver failure — no
//     partial-trial recovery, no retries. The error carries the method id
//     and trial index, wrapped around ErrSolverFailed.
//
// Complexity: O(len(methods)·nsims·S) where S is the solver cost; the
// runner itself adds O(n) bookkeeping per trial.
func RunTrials(dist matrix.Matrix, labels []string, methods []string, nsims int, reg Registry) ([]Trial, error) {
	// Stage 1: input validation.
	if _, err := validateLabeled(dist, labels); err != nil {
		return nil, err
	}
	if nsims < 1 || len(methods) == 0 {
		return nil, ErrDimensionMismatch
	}
	var (
		method string
		ok     bool
	)
	for _, method = range methods {
		if _, ok = reg[method]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
		}
	}

	// Stage 2: method-major execution. Slots are pre-addressed by
	// (method, trial index); there is no deduplication and no shared state
	// between trials beyond the read-only inputs.
	var (
		trials = make([]Trial, 0, len(methods)*nsims)
		solve  Solver
		length float64
		raw    []string
		err    error
		t      int
	)
	for _, method = range methods {
		solve = reg[method]
		for t = 1; t <= nsims; t++ {
			length, raw, err = solve(dist, labels)
			if err != nil {
				return nil, fmt.Errorf("%w: method %q trial %d: %v", ErrSolverFailed, method, t, err)
			}
			if err = checkFeasible(length, raw, labels); err != nil {
				return nil, fmt.Errorf("%w: method %q trial %d: %v", ErrSolverFailed, method, t, err)
			}
			trials = append(trials, Trial{
				Method:  method,
				Index:   t,
				Length:  length,
				RawTour: raw,
			})
		}
	}

	return trials, nil
}

// checkFeasible verifies a solver result: finite non-negative length and a
// raw tour that visits every label exactly once. A closed tour (first label
// repeated at the end) is accepted and treated as its open form.
//
// Complexity: O(n) time, O(n) space.
func checkFeasible(length float64, raw []string, labels []string) error {
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return fmt.Errorf("infeasible length %v", length)
	}

	// Normalize a closed tour to its open form.
	open := raw
	if len(raw) == len(labels)+1 && len(raw) > 1 && raw[0] == raw[len(raw)-1] {
		open = raw[:len(raw)-1]
	}
	if len(open) != len(labels) {
		return fmt.Errorf("tour visits %d nodes, want %d", len(open), len(labels))
	}

	// Permutation check against the label set.
	valid := make(map[string]bool, len(labels))
	for _, l := range labels {
		valid[l] = false
	}
	var (
		l    string
		seen bool
		ok   bool
	)
	for _, l = range open {
		if seen, ok = valid[l]; !ok {
			return fmt.Errorf("tour contains unknown label %q", l)
		}
		if seen {
			return fmt.Errorf("tour visits label %q twice", l)
		}
		valid[l] = true
	}

	return nil
}
