package cover

import (
	"slices"

	"github.com/katalvlaran/halfcover/matrix"
)

// CenterIndex returns the 0-based position, within an ascending row of n
// distances, of the coverage radius: n/2 − 1 + n%2.
//
// Positions 0..CenterIndex(n) hold ceil(n/2) distances, so a disk of that
// radius holds ceil(n/2) points: exactly n/2 for even n, (n+1)/2 for odd n.
// CenterIndex(1) == 0. The result is meaningless for n ≤ 0.
func CenterIndex(n int) int {
	return n/2 - 1 + n%2
}

// Required returns the number of points a circle must hold, ceil(n/2).
func Required(n int) int {
	return CenterIndex(n) + 1
}

// CoverageRadii returns, for every point i, the smallest radius whose
// closed disk around i holds at least half the points.
//
// Each row of dist is copied, sorted ascending and read at CenterIndex(n);
// dist itself is not modified. A 1×1 matrix yields [0].
//
// dist must be a distance matrix: square, zero diagonal, exactly symmetric.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// matrix.ErrNonZeroDiagonal, matrix.ErrAsymmetry.
//
// Complexity: O(n² log n) time, O(n) extra space.
func CoverageRadii(dist *matrix.Dense) ([]float64, error) {
	if dist == nil {
		return nil, matrix.ErrNilMatrix
	}
	if err := matrix.ValidateDistance(dist, 0); err != nil {
		return nil, err
	}

	n := dist.Rows()
	k := CenterIndex(n)
	radii := make([]float64, n)
	for i := 0; i < n; i++ {
		row, err := dist.Row(i)
		if err != nil {
			return nil, err
		}
		slices.Sort(row)
		radii[i] = row[k]
	}

	return radii, nil
}
