// Package heuristics - the solver registry.

package heuristics

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lvlath/go/matrix"
	"github.com/lvlath/go/tsp"

	"github.com/katalvlaran/tourbench/bench"
)

// Method identifiers exposed by NewRegistry.
const (
	// MethodTwoOpt is randomized 2-opt local search: shuffled neighborhood,
	// fresh seed stream per trial.
	MethodTwoOpt = "two_opt"

	// MethodThreeOpt is randomized 3-opt local search with a 2-opt warm-up.
	MethodThreeOpt = "three_opt"

	// MethodTwoOptFixed is 2-opt with a pinned seed and no neighborhood
	// shuffle: every trial returns the identical tour and length.
	MethodTwoOptFixed = "two_opt_fixed"

	// MethodChristofides is the 1.5-approximation; it requires a symmetric
	// metric instance and fails as a solver error on asymmetric input.
	MethodChristofides = "christofides"
)

// fixedSeed is the pinned seed used by the *_fixed deterministic methods.
// The value is arbitrary but stable.
const fixedSeed int64 = 1

// Options configures every solver produced by NewRegistry.
type Options struct {
	// Seed is the base of the per-trial seed streams. 0 means "draw a fresh
	// base from the process-wide source" (non-reproducible runs).
	Seed int64

	// TimeLimit caps each solver invocation; 0 means unlimited.
	TimeLimit time.Duration

	// Eps overrides the local-search improvement tolerance when > 0.
	Eps float64
}

// Methods returns the default method identifiers in their stable evaluation
// order. Christofides is excluded: the collapsed matrices the bench engine
// produces are asymmetric by construction.
func Methods() []string {
	return []string{MethodTwoOpt, MethodThreeOpt, MethodTwoOptFixed}
}

// NewRegistry builds a bench.Registry over the lvlath/tsp solvers.
func NewRegistry(opt Options) bench.Registry {
	seeds := newSeedStream(opt.Seed)

	return bench.Registry{
		MethodTwoOpt: newSolver(opt, seeds.next, func(o *tsp.Options) {
			o.Algo = tsp.TwoOptOnly
			o.ShuffleNeighborhood = true
		}),
		MethodThreeOpt: newSolver(opt, seeds.next, func(o *tsp.Options) {
			o.Algo = tsp.ThreeOptOnly
			o.EnableLocalSearch = true
			o.ShuffleNeighborhood = true
		}),
		MethodTwoOptFixed: newSolver(opt, nil, func(o *tsp.Options) {
			o.Algo = tsp.TwoOptOnly
			o.ShuffleNeighborhood = false
			o.Seed = fixedSeed
		}),
		MethodChristofides: newSolver(opt, seeds.next, func(o *tsp.Options) {
			o.Algo = tsp.Christofides
			o.Symmetric = true
			o.EnableLocalSearch = true
		}),
	}
}

// newSolver wraps one lvlath/tsp configuration as a bench.Solver.
//
// Per invocation:
//   - start from tsp.DefaultOptions with ATSP-permissive settings,
//   - draw the next per-trial seed (when a stream is supplied),
//   - apply the method-specific configuration,
//   - solve, then translate the closed index tour into an open label tour.
func newSolver(opt Options, nextSeed func() int64, configure func(o *tsp.Options)) bench.Solver {
	return func(dist matrix.Matrix, labels []string) (float64, []string, error) {
		o := tsp.DefaultOptions()
		o.Symmetric = false
		o.StartVertex = 0
		if opt.TimeLimit > 0 {
			o.TimeLimit = opt.TimeLimit
		}
		if opt.Eps > 0 {
			o.Eps = opt.Eps
		}
		if nextSeed != nil {
			o.Seed = nextSeed()
		}
		configure(&o)

		res, err := tsp.SolveMatrix(dist, labels, o)
		if err != nil {
			return 0, nil, err
		}

		tour, err := labelTour(res.Tour, labels)
		if err != nil {
			return 0, nil, err
		}

		return res.Cost, tour, nil
	}
}

// labelTour translates a closed index tour (tour[0]==tour[n]) into an open
// label sequence.
//
// Complexity: O(n).
func labelTour(tour []int, labels []string) ([]string, error) {
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return nil, fmt.Errorf("heuristics: unexpected tour shape %v", tour)
	}

	var (
		open = tour[:len(tour)-1]
		out  = make([]string, len(open))
		i    int
		v    int
	)
	for i, v = range open {
		if v < 0 || v >= len(labels) {
			return nil, fmt.Errorf("heuristics: tour index %d out of label range", v)
		}
		out[i] = labels[v]
	}

	return out, nil
}

// seedStream hands out decorrelated per-trial seeds derived from one base
// via a SplitMix64-style finalizer, so a fixed base reproduces the same
// trial sequence while consecutive trials stay independent.
type seedStream struct {
	base int64
	ctr  uint64
}

// newSeedStream picks the base seed: the caller's when non-zero, otherwise
// a fresh draw from the process-wide source.
func newSeedStream(base int64) *seedStream {
	if base == 0 {
		base = rand.Int63()
	}

	return &seedStream{base: base}
}

// next returns the next derived seed. Safe for concurrent use; never
// returns 0 (0 selects the library's own default stream).
func (s *seedStream) next() int64 {
	stream := atomic.AddUint64(&s.ctr, 1)

	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	x := uint64(s.base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	seed := int64(x)
	if seed == 0 {
		seed = 1
	}

	return seed
}
