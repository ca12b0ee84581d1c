package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Point is an immutable 2D coordinate. Identity is by value, so two points
// with equal coordinates compare equal with ==.
type Point struct {
	v r2.Point
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{v: r2.Point{X: x, Y: y}}
}

// FromR2 wraps an r2.Point.
func FromR2(p r2.Point) Point { return Point{v: p} }

// X returns the abscissa.
func (p Point) X() float64 { return p.v.X }

// Y returns the ordinate.
func (p Point) Y() float64 { return p.v.Y }

// R2 exposes the underlying r2.Point.
func (p Point) R2() r2.Point { return p.v }

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.v.X) && !math.IsInf(p.v.X, 0) &&
		!math.IsNaN(p.v.Y) && !math.IsInf(p.v.Y, 0)
}

// Sub returns the vector p − q as a point.
func (p Point) Sub(q Point) Point { return Point{v: p.v.Sub(q.v)} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{v: p.v.Add(q.v)} }

// Mul scales both coordinates by k.
func (p Point) Mul(k float64) Point { return Point{v: p.v.Mul(k)} }

// Dist returns the Euclidean distance between p and q.
// Dist(p, q) == Dist(q, p) and Dist(p, p) == 0 hold exactly.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.v.X-q.v.X, p.v.Y-q.v.Y)
}

// String formats the point as "(x, y)" with two decimals.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.v.X, p.v.Y)
}
