// Package heuristics binds the lvlath/tsp solvers to the bench.Solver
// contract so they can be evaluated as opaque, pluggable strategies.
//
// The bench engine treats every method as a black box behind
// func(matrix, labels) (length, tour, error); this package supplies that
// box. No TSP algorithm is implemented here — each registry entry
// configures github.com/katalvlaran/lvlath/tsp and translates its
// index-based closed tours into the label tours the engine records.
//
// Seeding policy:
//   - Options.Seed == 0: the base seed is drawn from the process-wide
//     source, so every run (and every trial) is an independent sample —
//     the behavior the repeated-trial design exists to measure.
//   - Options.Seed != 0: trials receive SplitMix64-derived per-call
//     streams, so a run is reproducible while trials still differ.
//   - The *_fixed methods pin one seed and disable neighborhood shuffling,
//     producing identical output on every trial; they are the deterministic
//     reference points in a distribution.
package heuristics
