// Package bench provides the repeated-trial evaluation engine for heuristic
// TSP solvers under a fixed start/end constraint.
//
// The pipeline has four pure stages:
//
//   - CollapseEndpoints — rewrite an n×n distance matrix with required start
//     and end nodes into an (n-1)×(n-1) matrix where both endpoints are
//     replaced by one synthetic linking node, so any closed-tour heuristic
//     can solve the fixed-endpoints path problem.
//
//   - RunTrials — invoke each registered solver exactly nsims times against
//     the collapsed matrix, method-major, recording length and raw tour per
//     trial; the first solver failure aborts the whole run.
//
//   - Reconstruct — rotate a raw tour at the synthetic node and splice the
//     real endpoints back in, yielding the start→…→end path.
//
//   - Aggregate — derive tie-preserving per-method minima, the global best
//     and worst trial sets, and the full unfiltered trial distribution.
//
// Evaluate composes all four stages. Segments and the Result table methods
// shape the outcome for downstream reporting/plotting layers.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from
//     errors.go, matched via errors.Is.
//   - All stages are side-effect free and idempotent; inputs are never
//     mutated.
//   - Execution is single-threaded; trials are independent, so callers may
//     shard methods across goroutines if they need parallelism.
package bench
