package geom

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSegments is the number of vertices used to approximate a circle
// when it is handed to a renderer.
const DefaultSegments = 40

// minSegments is the smallest polygon that still encloses an area.
const minSegments = 3

// ErrTooFewSegments is returned by Polyline when segments < 3.
var ErrTooFewSegments = errors.New("geom: polyline needs at least 3 segments")

// Circle is an immutable (center, radius) pair. Radius is non-negative.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns the circle centred at c with radius r.
func NewCircle(c Point, r float64) Circle {
	return Circle{Center: c, Radius: r}
}

// Contains reports whether p lies in the closed disk (distance ≤ radius).
func (c Circle) Contains(p Point) bool {
	return c.Center.Dist(p) <= c.Radius
}

// Bounds returns the axis-aligned square enclosing the disk.
func (c Circle) Bounds() Rect {
	return RectFromPoints(
		NewPoint(c.Center.X()-c.Radius, c.Center.Y()-c.Radius),
		NewPoint(c.Center.X()+c.Radius, c.Center.Y()+c.Radius),
	)
}

// Polyline returns segments points evenly spaced on the circumference,
// starting at angle 0 and turning counter-clockwise. The ring is open:
// the caller closes it by joining the last point back to the first.
//
// Complexity: O(segments).
func (c Circle) Polyline(segments int) ([]Point, error) {
	if segments < minSegments {
		return nil, ErrTooFewSegments
	}

	ring := make([]Point, segments)
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(step * float64(i))
		ring[i] = NewPoint(c.Center.X()+c.Radius*cos, c.Center.Y()+c.Radius*sin)
	}

	return ring, nil
}

// String formats the circle as "center=(x, y) radius=r".
func (c Circle) String() string {
	return fmt.Sprintf("center=%s radius=%.2f", c.Center, c.Radius)
}
