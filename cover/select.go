package cover

import (
	"fmt"
	"math"
)

// SelectPair returns the indices of the smallest and second-smallest
// coverage radii, with radii[c1] ≤ radii[c2] ≤ radii[i] for every other i.
//
// A single left-to-right scan keeps two running minima. It starts from
// (0, 1), swapped only when radii[0] > radii[1], and every comparison is
// strict, so on ties the lower index wins.
//
// Errors: ErrInsufficientPoints (len < 2), ErrInvalidRadius.
//
// Complexity: O(n) time, O(1) space.
func SelectPair(radii []float64) (c1, c2 int, err error) {
	n := len(radii)
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: got %d radii", ErrInsufficientPoints, n)
	}
	for i, r := range radii {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return 0, 0, fmt.Errorf("radius %d = %v: %w", i, r, ErrInvalidRadius)
		}
	}

	c1, c2 = 0, 1
	if radii[c1] > radii[c2] {
		c1, c2 = c2, c1
	}
	for i := 2; i < n; i++ {
		if radii[c1] > radii[i] {
			c2 = c1
			c1 = i
		} else if radii[c2] > radii[i] {
			c2 = i
		}
	}

	return c1, c2, nil
}
