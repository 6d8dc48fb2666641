// Package bench - unified evaluation pipeline.

package bench

import "github.com/lvlath/go/matrix"

// Evaluate runs the full pipeline over one labeled distance matrix:
//
//	CollapseEndpoints → RunTrials → Reconstruct (per trial) → Aggregate.
//
// Contracts:
//   - dist, labels, start, end as for CollapseEndpoints.
//   - methods, nsims, reg as for RunTrials; solvers see only the collapsed
//     matrix and its labels — never the trial index, so no correlation
//     between trial number and outcome can be introduced by the engine.
//   - Every trial's Path is populated before aggregation; a raw tour that
//     cannot be reconstructed aborts the run with ErrMalformedTour.
//
// Errors: those of the individual stages; see errors.go.
//
// Complexity: O(n²) transform + O(len(methods)·nsims·S) solving, S being
// the dominant solver cost.
func Evaluate(dist matrix.Matrix, labels []string, start, end string, methods []string, nsims int, reg Registry) (Result, error) {
	// Stage 1: collapse the fixed endpoints into the synthetic node.
	collapsed, collapsedLabels, synthetic, err := CollapseEndpoints(dist, labels, start, end)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: run every method against the collapsed instance.
	trials, err := RunTrials(collapsed, collapsedLabels, methods, nsims, reg)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: map each raw tour back to the real-world path.
	var i int
	for i = range trials {
		trials[i].Path, err = Reconstruct(trials[i].RawTour, synthetic, start, end)
		if err != nil {
			return Result{}, err
		}
	}

	// Stage 4: aggregate.
	return Aggregate(trials)
}
