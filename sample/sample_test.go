// Package sample_test validates deterministic point generation.
package sample_test

import (
	"testing"

	"github.com/katalvlaran/halfcover/geom"
	"github.com/katalvlaran/halfcover/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPoints_SeedDeterminism checks that equal seeds give identical sets.
func TestPoints_SeedDeterminism(t *testing.T) {
	a, err := sample.Points(50, sample.WithSeed(42))
	require.NoError(t, err)
	b, err := sample.Points(50, sample.WithSeed(42))
	require.NoError(t, err)
	c, err := sample.Points(50, sample.WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestPoints_ZeroSeedIsDefault maps seed 0 onto DefaultSeed.
func TestPoints_ZeroSeedIsDefault(t *testing.T) {
	a, err := sample.Points(10)
	require.NoError(t, err)
	b, err := sample.Points(10, sample.WithSeed(sample.DefaultSeed))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestPoints_WithinBounds keeps every point inside the requested rectangle.
func TestPoints_WithinBounds(t *testing.T) {
	box := geom.RectFromPoints(geom.NewPoint(2, -1), geom.NewPoint(3, 5))

	got, err := sample.Points(200, sample.WithBounds(box), sample.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, got, 200)
	for _, p := range got {
		assert.True(t, box.Contains(p), "%v outside %v..%v", p, box.Min(), box.Max())
	}
}

func TestPoints_Errors(t *testing.T) {
	_, err := sample.Points(-1)
	assert.ErrorIs(t, err, sample.ErrNegativeCount)

	_, err = sample.Points(3, sample.WithBounds(geom.EmptyRect()))
	assert.ErrorIs(t, err, sample.ErrEmptyBounds)

	empty, err := sample.Points(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestStream_Independent derives distinct but reproducible streams.
func TestStream_Independent(t *testing.T) {
	a, _ := sample.Points(5, sample.WithRand(sample.Stream(9, 1)))
	b, _ := sample.Points(5, sample.WithRand(sample.Stream(9, 1)))
	c, _ := sample.Points(5, sample.WithRand(sample.Stream(9, 2)))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
