// Package bench - validation helpers shared by the pipeline stages.
//
// Small, deterministic, side-effect free checks. No logging, no panics on
// user input - only sentinel errors from errors.go.

package bench

import "github.com/lvlath/go/matrix"

// validateLabeled verifies that dist is a non-nil square matrix and that
// labels names its rows in index order: len(labels)==n, entries non-empty
// and unique. Returns n (matrix order) on success.
//
// Complexity: O(n) time, O(n) extra space for the uniqueness set.
func validateLabeled(dist matrix.Matrix, labels []string) (int, error) {
	// Stage 1: shape checks (non-nil, square, non-empty).
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrDimensionMismatch
	}

	// Stage 2: label shape and uniqueness.
	if err := validateLabels(labels, nr); err != nil {
		return 0, err
	}

	return nr, nil
}

// validateLabels enforces len(labels)==n, non-empty strings, and uniqueness.
//
// Complexity: O(n) time and O(n) extra space.
func validateLabels(labels []string, n int) error {
	if len(labels) != n {
		return ErrDimensionMismatch
	}
	seen := make(map[string]struct{}, n)

	var (
		i  int    // loop index
		l  string // current label under validation
		ok bool   // presence flag in the 'seen' set
	)
	for i = 0; i < n; i++ {
		l = labels[i]
		// Empty or duplicate labels violate the shape/uniqueness contract.
		if l == "" {
			return ErrDimensionMismatch
		}
		if _, ok = seen[l]; ok {
			return ErrDimensionMismatch
		}
		seen[l] = struct{}{}
	}

	return nil
}

// indexOfLabel returns the position of label within labels, or -1.
//
// Complexity: O(n).
func indexOfLabel(labels []string, label string) int {
	for i := range labels {
		if labels[i] == label {
			return i
		}
	}

	return -1
}
