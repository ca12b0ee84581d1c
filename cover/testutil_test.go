package cover_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/halfcover/geom"
)

// pts builds a point slice from literal (x, y) pairs.
func pts(xy ...[2]float64) []geom.Point {
	out := make([]geom.Point, len(xy))
	for i, p := range xy {
		out[i] = geom.NewPoint(p[0], p[1])
	}

	return out
}

// bruteRadius is the reference coverage radius for center i: the smallest
// candidate distance r such that at least ceil(n/2) points lie within r.
func bruteRadius(points []geom.Point, i int) float64 {
	need := (len(points) + 1) / 2
	best := math.Inf(1)
	for _, cand := range points {
		r := points[i].Dist(cand)
		cnt := 0
		for _, q := range points {
			if points[i].Dist(q) <= r {
				cnt++
			}
		}
		if cnt >= need && r < best {
			best = r
		}
	}

	return best
}

// bruteMin is the smallest bruteRadius over the whole set.
func bruteMin(points []geom.Point) float64 {
	best := math.Inf(1)
	for i := range points {
		best = math.Min(best, bruteRadius(points, i))
	}

	return best
}

// countInside counts points in the closed disk by linear scan.
func countInside(points []geom.Point, c geom.Circle) int {
	n := 0
	for _, p := range points {
		if c.Contains(p) {
			n++
		}
	}

	return n
}

// gridPoints returns a deterministic, irregular n-point set for property tests.
func gridPoints(t testing.TB, n int, seed float64) []geom.Point {
	t.Helper()
	out := make([]geom.Point, n)
	for i := range out {
		x := math.Mod(float64(i)*7.31+seed*3.7, 23.0) - 11.5
		y := math.Mod(float64(i*i)*1.93+seed, 17.0) - 8.5
		out[i] = geom.NewPoint(x, y)
	}

	return slices.Clip(out)
}
