package cover_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/halfcover/cover"
	"github.com/katalvlaran/halfcover/geom"
	"github.com/katalvlaran/halfcover/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCenterIndex pins the parity rule: ceil(n/2) elements are read.
func TestCenterIndex(t *testing.T) {
	cases := map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 2, 6: 2, 7: 3}
	for n, want := range cases {
		assert.Equal(t, want, cover.CenterIndex(n), "n=%d", n)
		assert.Equal(t, (n+1)/2, cover.Required(n), "n=%d", n)
	}
}

// TestDistanceMatrix checks symmetry, zero diagonal and a known value.
func TestDistanceMatrix(t *testing.T) {
	d, err := cover.DistanceMatrix(pts([2]float64{0, 0}, [2]float64{3, 4}, [2]float64{3, 4}))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDistance(d, 0))

	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "duplicate points are at distance 0")
}

// TestDistanceMatrix_Errors covers the two input failures.
func TestDistanceMatrix_Errors(t *testing.T) {
	_, err := cover.DistanceMatrix(pts([2]float64{1, 1}))
	assert.ErrorIs(t, err, cover.ErrInsufficientPoints)

	_, err = cover.DistanceMatrix(pts([2]float64{1, 1}, [2]float64{math.NaN(), 0}))
	assert.ErrorIs(t, err, cover.ErrNonFiniteCoordinate)

	_, err = cover.DistanceMatrix(pts([2]float64{-math.MaxFloat64, 0}, [2]float64{math.MaxFloat64, 0}))
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "overflowing distance is rejected")
}

// TestCoverageRadii_LeavesMatrixIntact ensures rows are sorted on copies.
func TestCoverageRadii_LeavesMatrixIntact(t *testing.T) {
	d, err := cover.DistanceMatrix(pts([2]float64{0, 0}, [2]float64{4, 0}, [2]float64{1, 0}))
	require.NoError(t, err)
	before := d.String()

	radii, err := cover.CoverageRadii(d)
	require.NoError(t, err)
	// n=3, index 1: second-smallest distance per row.
	assert.Equal(t, []float64{1, 3, 1}, radii)
	assert.Equal(t, before, d.String())
}

// TestCoverageRadii_SinglePoint covers the n=1 degenerate row.
func TestCoverageRadii_SinglePoint(t *testing.T) {
	d, err := matrix.NewSquare(1)
	require.NoError(t, err)

	radii, err := cover.CoverageRadii(d)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, radii)

	_, err = cover.CoverageRadii(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = cover.CoverageRadii(rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCoverageRadii_RejectsNonDistance refuses matrices that are not distances.
func TestCoverageRadii_RejectsNonDistance(t *testing.T) {
	asym, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, asym.Set(0, 1, 1))
	_, err = cover.CoverageRadii(asym)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	diag, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, diag.Set(1, 1, 2))
	_, err = cover.CoverageRadii(diag)
	assert.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
}

func TestSelectPair(t *testing.T) {
	tests := []struct {
		name   string
		radii  []float64
		c1, c2 int
	}{
		{"ordered start", []float64{1, 2}, 0, 1},
		{"swapped start", []float64{2, 1}, 1, 0},
		{"new minimum demotes c1", []float64{3, 4, 1}, 2, 0},
		{"replaces c2 only", []float64{1, 4, 2}, 0, 2},
		{"all equal keeps first two", []float64{2, 2, 2, 2}, 0, 1},
		{"tie on minimum keeps lowest", []float64{5, 1, 3, 1}, 1, 3},
		{"tie on second keeps lowest", []float64{9, 1, 4, 4}, 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c1, c2, err := cover.SelectPair(tc.radii)
			require.NoError(t, err)
			assert.Equal(t, tc.c1, c1, "c1")
			assert.Equal(t, tc.c2, c2, "c2")
		})
	}
}

func TestSelectPair_Errors(t *testing.T) {
	_, _, err := cover.SelectPair([]float64{1})
	assert.ErrorIs(t, err, cover.ErrInsufficientPoints)

	_, _, err = cover.SelectPair([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, cover.ErrInvalidRadius)

	_, _, err = cover.SelectPair([]float64{1, -2})
	assert.ErrorIs(t, err, cover.ErrInvalidRadius)
}

// TestSolve_FivePoints is the first reference scenario.
func TestSolve_FivePoints(t *testing.T) {
	points := pts([2]float64{0, 0}, [2]float64{3, 0}, [2]float64{2, 2}, [2]float64{-8, -7}, [2]float64{-3, 2})

	sol, err := cover.Solve(context.Background(), points)
	require.NoError(t, err)

	assert.Equal(t, geom.NewPoint(2, 2), sol.A.Center)
	assert.InDelta(t, 2*math.Sqrt2, sol.A.Radius, 1e-12)
	assert.Equal(t, geom.NewPoint(0, 0), sol.B.Center)
	assert.Equal(t, 3.0, sol.B.Radius)
	assert.Equal(t, [2]int{2, 0}, [2]int{sol.IndexA, sol.IndexB})

	assert.GreaterOrEqual(t, countInside(points, sol.A), 3)
	assert.GreaterOrEqual(t, countInside(points, sol.B), 3)
	assert.Equal(t, bruteMin(points), sol.A.Radius)
}

// TestSolve_NearlyCollinear is the second reference scenario; it also
// exercises a tie on the second-smallest radius (indices 2 and 4).
func TestSolve_NearlyCollinear(t *testing.T) {
	points := pts([2]float64{-10, -10}, [2]float64{10, 10}, [2]float64{8, 8}, [2]float64{-3, -3}, [2]float64{0, 0})

	sol, err := cover.Solve(context.Background(), points)
	require.NoError(t, err)

	assert.Equal(t, 3, sol.IndexA)
	assert.Equal(t, 2, sol.IndexB, "tie resolved to the lower index")
	assert.InDelta(t, 7*math.Sqrt2, sol.A.Radius, 1e-12)
	assert.InDelta(t, 8*math.Sqrt2, sol.B.Radius, 1e-12)
	assert.GreaterOrEqual(t, countInside(points, sol.A), 3)
	assert.GreaterOrEqual(t, countInside(points, sol.B), 3)
}

// TestSolve_TwoPoints: each point covers itself, so both radii are 0.
func TestSolve_TwoPoints(t *testing.T) {
	points := pts([2]float64{1, 2}, [2]float64{-4, 7})

	sol, err := cover.Solve(context.Background(), points)
	require.NoError(t, err)
	assert.Equal(t, geom.NewCircle(points[0], 0), sol.A)
	assert.Equal(t, geom.NewCircle(points[1], 0), sol.B)
}

// TestSolve_Duplicates treats coincident points as distance 0.
func TestSolve_Duplicates(t *testing.T) {
	points := pts([2]float64{0, 0}, [2]float64{0, 0}, [2]float64{5, 0}, [2]float64{6, 0})

	sol, err := cover.Solve(context.Background(), points)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sol.A.Radius)
	assert.Equal(t, 0.0, sol.B.Radius)
	assert.NotEqual(t, sol.IndexA, sol.IndexB)
	assert.GreaterOrEqual(t, countInside(points, sol.A), 2)
}

func TestSolve_InputErrors(t *testing.T) {
	ctx := context.Background()

	_, err := cover.Solve(ctx, nil)
	assert.ErrorIs(t, err, cover.ErrInsufficientPoints)

	_, err = cover.Solve(ctx, pts([2]float64{0, 0}))
	assert.ErrorIs(t, err, cover.ErrInsufficientPoints)

	_, err = cover.Solve(ctx, pts([2]float64{0, 0}, [2]float64{math.Inf(1), 1}))
	assert.ErrorIs(t, err, cover.ErrNonFiniteCoordinate)
}

// TestSolve_Cancelled stops before any computation when ctx is done.
func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cover.Solve(ctx, pts([2]float64{0, 0}, [2]float64{1, 1}))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_SnapshotIsolation ensures the result does not alias the input.
func TestSolve_SnapshotIsolation(t *testing.T) {
	points := pts([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{9, 9})

	sol, err := cover.Solve(context.Background(), points)
	require.NoError(t, err)
	centerA := sol.A.Center

	points[sol.IndexA] = geom.NewPoint(100, 100)
	assert.Equal(t, centerA, sol.A.Center)
}

// TestSolve_Properties checks coverage, ordering, optimality and idempotence
// over a spread of deterministic point sets.
func TestSolve_Properties(t *testing.T) {
	ctx := context.Background()
	for n := 2; n <= 40; n++ {
		points := gridPoints(t, n, float64(n))

		sol, err := cover.Solve(ctx, points)
		require.NoError(t, err, "n=%d", n)

		need := (n + 1) / 2
		assert.GreaterOrEqual(t, countInside(points, sol.A), need, "n=%d circle A", n)
		assert.GreaterOrEqual(t, countInside(points, sol.B), need, "n=%d circle B", n)
		assert.LessOrEqual(t, sol.A.Radius, sol.B.Radius, "n=%d", n)
		assert.NotEqual(t, sol.IndexA, sol.IndexB, "n=%d", n)
		assert.Equal(t, bruteMin(points), sol.A.Radius, "n=%d", n)

		again, err := cover.Solve(ctx, points)
		require.NoError(t, err)
		assert.Equal(t, sol, again, "n=%d idempotence", n)
	}
}
