// Package tourbench is a repeated-trial evaluation harness for heuristic
// (A)TSP solvers with fixed start/end endpoints.
//
// 🚀 What is tourbench?
//
//	A small, deterministic-by-contract benchmark engine that answers one
//	question: "given a distance matrix, a required start city and a required
//	end city, how good can each heuristic get — and how noisy is it?"
//		• Endpoint collapse: turn the fixed-endpoints path problem into a
//		  closed-tour problem via one synthetic linking node
//		• Trial runner: execute every registered heuristic nsims times,
//		  method-major, aborting on the first solver failure
//		• Tour reconstruction: map each raw synthetic-matrix tour back to a
//		  real start→…→end path
//		• Aggregation: tie-preserving per-method minima, the global best
//		  path set, the worst trials, and the full trial distribution
//
// ✨ Why repeated trials?
//
//   - Randomized heuristics are noisy — a single invocation can return a
//     mediocre tour
//   - Keeping the best of many independent trials approximates each
//     heuristic's achievable quality and exposes its variance
//   - Ties are informative (deterministic methods always tie with
//     themselves), so they are preserved, never broken arbitrarily
//
// Under the hood, everything is organized under three packages:
//
//	bench/       — the core engine: transform, run, reconstruct, aggregate
//	heuristics/  — a solver registry backed by github.com/katalvlaran/lvlath/tsp
//	report/      — instance documents, host metadata, CSV table emission
//
// Solvers are external collaborators behind a single contract,
// func(matrix, labels) (length, tour, error); tourbench implements no TSP
// algorithm of its own and guarantees no optimality — only a complete,
// correctly aggregated record of what the heuristics achieved.
package tourbench
