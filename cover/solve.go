package cover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/halfcover/geom"
)

// Solution is the pair of circles returned by Solve.
//
// A holds the global minimum coverage radius; B the next smallest among
// the remaining points, so A.Radius ≤ B.Radius. Both centers are input
// points with distinct indices, and each circle holds at least ceil(n/2)
// points on its own.
type Solution struct {
	A, B geom.Circle

	// IndexA and IndexB are the positions of the centers in the input.
	IndexA, IndexB int
}

// Circles returns [A, B].
func (s Solution) Circles() [2]geom.Circle { return [2]geom.Circle{s.A, s.B} }

// String renders the solution as "circle #1: ... circle #2: ...".
func (s Solution) String() string {
	return fmt.Sprintf("circle #1: %s circle #2: %s", s.A, s.B)
}

// newSolution packages the selected indices. Pure data assembly.
func newSolution(points []geom.Point, radii []float64, c1, c2 int) Solution {
	return Solution{
		A:      geom.NewCircle(points[c1], radii[c1]),
		B:      geom.NewCircle(points[c2], radii[c2]),
		IndexA: c1,
		IndexB: c2,
	}
}

// Solve picks two input points as circle centers so that each circle holds
// at least half of the points and the smaller radius is minimal.
//
// Algorithm Outline:
//  1. Validate: n ≥ 2 and every coordinate finite; fail fast otherwise.
//  2. Snapshot the points so later caller mutations cannot leak in.
//  3. Build the pairwise distance matrix.
//  4. Check ctx; a cancelled solve stops before the sort phase.
//  5. Derive one coverage radius per point.
//  6. Select the two smallest radii (ties → lowest index).
//
// Errors:
//   - ErrInsufficientPoints, ErrNonFiniteCoordinate (wrapped with context).
//   - ctx.Err() wrapped, when ctx is done between phases.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Solve(ctx context.Context, points []geom.Point) (Solution, error) {
	if err := validatePoints(points); err != nil {
		return Solution{}, err
	}

	snap := make([]geom.Point, len(points))
	copy(snap, points)

	if err := ctx.Err(); err != nil {
		return Solution{}, fmt.Errorf("cover: solve: %w", err)
	}
	dist, err := distances(snap)
	if err != nil {
		return Solution{}, err
	}

	if err = ctx.Err(); err != nil {
		return Solution{}, fmt.Errorf("cover: solve after distance phase: %w", err)
	}
	radii, err := CoverageRadii(dist)
	if err != nil {
		return Solution{}, err
	}

	c1, c2, err := SelectPair(radii)
	if err != nil {
		return Solution{}, err
	}

	return newSolution(snap, radii, c1, c2), nil
}
