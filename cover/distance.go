package cover

import (
	"fmt"

	"github.com/katalvlaran/halfcover/geom"
	"github.com/katalvlaran/halfcover/matrix"
)

// validatePoints enforces n ≥ 2 and finite coordinates, in that order.
//
// Complexity: O(n).
func validatePoints(points []geom.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("point %d %v: %w", i, p, ErrNonFiniteCoordinate)
		}
	}

	return nil
}

// DistanceMatrix returns the n×n matrix of pairwise Euclidean distances,
// d[i][j] = d[j][i] = |p_i − p_j| and d[i][i] = 0.
//
// Only the upper triangle is evaluated; each value is mirrored, so the
// result is exactly symmetric. Coincident points yield 0.
//
// Errors: ErrInsufficientPoints (n < 2), ErrNonFiniteCoordinate.
//
// Complexity: O(n²) time and space.
func DistanceMatrix(points []geom.Point) (*matrix.Dense, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	return distances(points)
}

// distances fills the matrix for points already passed by validatePoints.
func distances(points []geom.Point) (*matrix.Dense, error) {
	n := len(points)
	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Hypot of finite inputs can still overflow to +Inf for
			// coordinates near MaxFloat64; Set rejects it.
			if err = dist.SetSym(i, j, points[i].Dist(points[j])); err != nil {
				return nil, fmt.Errorf("distance %d-%d: %w", i, j, err)
			}
		}
	}

	return dist, nil
}
