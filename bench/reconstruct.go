// Package bench - tour reconstruction.
//
// A raw tour over the collapsed matrix is a cycle through the surviving
// nodes plus the synthetic linking node. The real-world path is obtained by
// reading the cycle starting immediately after the synthetic node and
// splicing the true endpoints back in:
//
//	raw:  [c, d, SYN, a, b]           (cycle, any rotation)
//	path: [start, a, b, c, d, end]

package bench

// Reconstruct maps a raw synthetic-matrix tour back to the real path.
//
// Steps:
//  1. Accept the tour open (len n') or closed (len n'+1, first==last); the
//     closing element is dropped. A tour may close on any label except the
//     synthetic one: the synthetic label must occur exactly once in the raw
//     input as given, so [SYN b SYN] is malformed, not closed.
//  2. Locate the synthetic label.
//  3. Rotate: the part after the synthetic label (in tour order) followed by
//     the part before it.
//  4. Prepend start, append end.
//
// Errors: ErrMalformedTour when the synthetic label is absent or duplicated,
// when start or end already occur in the raw tour, when any label repeats,
// or when the resulting path length differs from the expected node count
// (open length + 1).
//
// Pure, no side effects. Complexity: O(n) time, O(n) space.
func Reconstruct(rawTour []string, synthetic, start, end string) ([]string, error) {
	if len(rawTour) == 0 {
		return nil, ErrMalformedTour
	}

	// The synthetic label is counted over the raw input as given, before
	// any normalization: a closed tour may repeat its first label at the
	// end, but never the synthetic one.
	var synCount int
	for i := range rawTour {
		if rawTour[i] == synthetic {
			synCount++
		}
	}
	if synCount != 1 {
		return nil, ErrMalformedTour
	}

	// Normalize a closed tour to its open form.
	open := rawTour
	if len(rawTour) > 1 && rawTour[0] == rawTour[len(rawTour)-1] {
		open = rawTour[:len(rawTour)-1]
	}

	// Locate the synthetic label and reject structural violations in one
	// pass: endpoint re-introduction, duplicates, double synthetic.
	var (
		pos  = -1
		seen = make(map[string]struct{}, len(open))
		i    int
		l    string
		ok   bool
	)
	for i = 0; i < len(open); i++ {
		l = open[i]
		if l == start || l == end {
			return nil, ErrMalformedTour
		}
		if _, ok = seen[l]; ok {
			return nil, ErrMalformedTour
		}
		seen[l] = struct{}{}
		if l == synthetic {
			pos = i
		}
	}
	if pos < 0 {
		return nil, ErrMalformedTour
	}

	// Rotate at the synthetic node and splice the endpoints.
	path := make([]string, 0, len(open)+1)
	path = append(path, start)
	path = append(path, open[pos+1:]...)
	path = append(path, open[:pos]...)
	path = append(path, end)

	// Invariant: |path| == |open|+1 == original matrix order.
	if len(path) != len(open)+1 {
		return nil, ErrMalformedTour
	}

	return path, nil
}
