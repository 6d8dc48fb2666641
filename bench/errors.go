// Package bench: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the bench
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package bench

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "bench: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential (method id, trial index), wrap with
// fmt.Errorf("%w: ctx", ErrX) at the boundary — callers still match with
// errors.Is.

var (
	// ErrInvalidTopology is returned when the start/end specification is
	// unusable: an endpoint label is missing from the matrix labels, or
	// start and end name the same node.
	ErrInvalidTopology = errors.New("bench: invalid start/end topology")

	// ErrLabelCollision is returned when the synthetic linking label derived
	// for the collapsed matrix clashes with an existing node label.
	ErrLabelCollision = errors.New("bench: synthetic label collides with existing label")

	// ErrSolverFailed marks a single heuristic invocation that errored or
	// returned an infeasible result. The run aborts on the first occurrence;
	// retrying or re-seeding is a caller decision, not the runner's.
	ErrSolverFailed = errors.New("bench: solver invocation failed")

	// ErrMalformedTour is returned by reconstruction when the raw tour lacks
	// the synthetic label, contains it more than once, re-introduces an
	// endpoint, or produces a path of unexpected length.
	ErrMalformedTour = errors.New("bench: malformed raw tour")

	// ErrUnknownMethod indicates a requested method id with no registered
	// solver.
	ErrUnknownMethod = errors.New("bench: unknown method id")

	// ErrDimensionMismatch indicates incompatible shapes: a non-square
	// matrix, a label slice of the wrong length, duplicate or empty labels,
	// a matrix too small to collapse, a non-positive trial budget, or an
	// empty method list.
	ErrDimensionMismatch = errors.New("bench: dimension mismatch")

	// ErrNoTrials is returned by Aggregate for an empty trial set: reporting
	// statistics over a missing sample would be silently misleading.
	ErrNoTrials = errors.New("bench: no trials to aggregate")
)
