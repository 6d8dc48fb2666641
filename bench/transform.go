// Package bench - endpoint collapse: the matrix transformer.
//
// CollapseEndpoints rewrites a fixed-endpoints path problem as a closed-tour
// problem. The two distinguished nodes (required start, required end) are
// removed and replaced by a single synthetic linking node:
//
//   - the synthetic node's outgoing row equals the start node's distances to
//     every surviving node (a tour leaving the synthetic node behaves like a
//     path leaving start),
//   - the synthetic node's incoming column equals the end node's distances
//     from every surviving node (a tour arc into the synthetic node behaves
//     like the final hop into end),
//   - the synthetic self-distance is 0.
//
// Any standard closed-tour heuristic can then solve the collapsed instance;
// Reconstruct maps its tours back to real start→…→end paths.

package bench

import "github.com/lvlath/go/matrix"

// SyntheticLabel derives the linking-node label used by CollapseEndpoints.
// The label is readable in traces ("A+E" for start A, end E); if it happens
// to collide with a surviving node label, CollapseEndpoints fails with
// ErrLabelCollision rather than renaming silently.
func SyntheticLabel(start, end string) string {
	return start + "+" + end
}

// CollapseEndpoints converts an n×n distance matrix with required start and
// end nodes into an (n-1)×(n-1) matrix in which both endpoints are replaced
// by one synthetic linking node, appended as the last row/column.
//
// Contracts:
//   - dist square, labels name its rows (unique, non-empty), n >= 3 so the
//     removal leaves at least one real node.
//   - start != end and both present in labels; otherwise ErrInvalidTopology.
//   - The synthetic label must not collide with any surviving label;
//     otherwise ErrLabelCollision.
//   - Pure: dist is read, never mutated; a fresh *matrix.Dense is returned
//     together with its label slice and the synthetic label.
//
// Surviving labels keep their original relative order.
//
// Complexity: O(n²) time and space.
func CollapseEndpoints(dist matrix.Matrix, labels []string, start, end string) (*matrix.Dense, []string, string, error) {
	// Stage 1: shape validation.
	n, err := validateLabeled(dist, labels)
	if err != nil {
		return nil, nil, "", err
	}
	if n < 3 {
		return nil, nil, "", ErrDimensionMismatch
	}

	// Stage 2: endpoint topology.
	if start == end {
		return nil, nil, "", ErrInvalidTopology
	}
	var (
		si = indexOfLabel(labels, start)
		ei = indexOfLabel(labels, end)
	)
	if si < 0 || ei < 0 {
		return nil, nil, "", ErrInvalidTopology
	}

	// Stage 3: surviving index set (original order) + collision check.
	var (
		syn  = SyntheticLabel(start, end)
		keep = make([]int, 0, n-2)
		i    int
	)
	for i = 0; i < n; i++ {
		if i == si || i == ei {
			continue
		}
		if labels[i] == syn {
			return nil, nil, "", ErrLabelCollision
		}
		keep = append(keep, i)
	}

	// Stage 4: build the collapsed matrix. The synthetic node occupies the
	// last index m-1; NewDense zero-initializes, so the synthetic
	// self-distance is already 0.
	var (
		m   = n - 1
		out *matrix.Dense
		v   float64
		r   int
		c   int
	)
	out, err = matrix.NewDense(m, m)
	if err != nil {
		return nil, nil, "", ErrDimensionMismatch
	}

	for r = 0; r < len(keep); r++ {
		for c = 0; c < len(keep); c++ {
			if v, err = dist.At(keep[r], keep[c]); err != nil {
				return nil, nil, "", ErrDimensionMismatch
			}
			if err = out.Set(r, c, v); err != nil {
				return nil, nil, "", ErrDimensionMismatch
			}
		}
	}

	// Synthetic row: the start node's outgoing distances.
	for c = 0; c < len(keep); c++ {
		if v, err = dist.At(si, keep[c]); err != nil {
			return nil, nil, "", ErrDimensionMismatch
		}
		if err = out.Set(m-1, c, v); err != nil {
			return nil, nil, "", ErrDimensionMismatch
		}
	}

	// Synthetic column: the end node's incoming distances.
	for r = 0; r < len(keep); r++ {
		if v, err = dist.At(keep[r], ei); err != nil {
			return nil, nil, "", ErrDimensionMismatch
		}
		if err = out.Set(r, m-1, v); err != nil {
			return nil, nil, "", ErrDimensionMismatch
		}
	}

	// Stage 5: label slice for the collapsed matrix.
	outLabels := make([]string, 0, m)
	for _, i = range keep {
		outLabels = append(outLabels, labels[i])
	}
	outLabels = append(outLabels, syn)

	return out, outLabels, syn, nil
}
