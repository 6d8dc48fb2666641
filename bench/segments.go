// Package bench - route segmentation for the rendering layer.

package bench

// Segment is one consecutive stop pair of a path, tagged with the group
// index shared by both of its endpoints. A rendering layer draws each group
// as one line segment of the route.
type Segment struct {
	// Group is the shared segment index, 0-based along the path.
	Group int

	// From is the label at path position Group.
	From string

	// To is the label at path position Group+1.
	To string
}

// Segments converts an ordered path of n stops into its n-1 consecutive-pair
// groups. The path is a sequence of stops, not a cycle: there is no
// wraparound segment from the last stop back to the first.
//
// Contracts:
//   - len(path) >= 2; otherwise ErrDimensionMismatch (a single stop has no
//     segment to draw).
//
// Pure, no side effects. Complexity: O(n) time, O(n) space.
func Segments(path []string) ([]Segment, error) {
	if len(path) < 2 {
		return nil, ErrDimensionMismatch
	}

	segs := make([]Segment, len(path)-1)

	var i int
	for i = 0; i+1 < len(path); i++ {
		segs[i] = Segment{Group: i, From: path[i], To: path[i+1]}
	}

	return segs, nil
}
