// Package bench - result aggregation.
//
// Aggregate is a pure derived view over a completed trial set: per-method
// tie-preserving minima, the global best and worst trial sets, and the full
// unfiltered distribution. It computes no statistics itself — mean, spread
// and shape belong to downstream consumers of Result.Distribution.

package bench

import "math"

// roundScale controls length stabilization precision (1e-9) for tie
// comparison. Without it, platform FP drift could split a genuine tie
// between two trials of the same deterministic method.
const roundScale = 1e9

// round1e9 stabilizes a length to 1e-9 precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Aggregate derives the Result for a completed trial set.
//
// Contracts:
//   - trials must be non-empty; otherwise ErrNoTrials (reporting over an
//     absent sample is refused, not silently emptied).
//   - Tie policy: within each method, every trial whose stabilized length
//     equals the method minimum is kept; the same policy applies to the
//     global minimum (GlobalBest) and maximum (Worst).
//   - Input order is preserved inside every output collection, so repeated
//     aggregation of the same slice is byte-for-byte idempotent.
//
// Complexity: O(T) time over T trials, O(T) space for the derived views.
func Aggregate(trials []Trial) (Result, error) {
	if len(trials) == 0 {
		return Result{}, ErrNoTrials
	}

	// Pass 1: minima/maxima. Stabilized lengths drive every comparison.
	var (
		minByMethod = make(map[string]float64)
		globalMin   = math.Inf(1)
		globalMax   = math.Inf(-1)
		length      float64
		cur         float64
		ok          bool
		i           int
	)
	for i = range trials {
		length = round1e9(trials[i].Length)
		if cur, ok = minByMethod[trials[i].Method]; !ok || length < cur {
			minByMethod[trials[i].Method] = length
		}
		if length < globalMin {
			globalMin = length
		}
		if length > globalMax {
			globalMax = length
		}
	}

	// Pass 2: collect tied trials and the distribution, preserving input
	// order throughout.
	res := Result{
		BestByMethod: make(map[string][]Trial, len(minByMethod)),
		Distribution: make([]Observation, 0, len(trials)),
	}
	for i = range trials {
		length = round1e9(trials[i].Length)
		if length == minByMethod[trials[i].Method] {
			res.BestByMethod[trials[i].Method] = append(res.BestByMethod[trials[i].Method], trials[i])
		}
		if length == globalMin {
			res.GlobalBest = append(res.GlobalBest, trials[i])
		}
		if length == globalMax {
			res.Worst = append(res.Worst, trials[i])
		}
		res.Distribution = append(res.Distribution, Observation{
			Method: trials[i].Method,
			Trial:  trials[i].Index,
			Length: trials[i].Length,
		})
	}

	return res, nil
}
