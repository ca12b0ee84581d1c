package geom

import "github.com/golang/geo/r2"

// Rect is an axis-aligned rectangle. Use EmptyRect for the empty set;
// the zero value is the degenerate rectangle at the origin.
type Rect struct {
	r r2.Rect
}

// EmptyRect returns a rectangle that contains no points.
func EmptyRect() Rect { return Rect{r: r2.EmptyRect()} }

// RectFromPoints returns the smallest rectangle containing all pts.
// With no points the result is empty.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return EmptyRect()
	}
	out := r2.RectFromPoints(pts[0].v)
	for _, p := range pts[1:] {
		out = out.AddPoint(p.v)
	}

	return Rect{r: out}
}

// Bounds is an alias of RectFromPoints for slices.
func Bounds(pts []Point) Rect { return RectFromPoints(pts...) }

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool { return r.r.IsEmpty() }

// Min returns the lower-left corner.
func (r Rect) Min() Point { return Point{v: r.r.Lo()} }

// Max returns the upper-right corner.
func (r Rect) Max() Point { return Point{v: r.r.Hi()} }

// Width returns the extent along X.
func (r Rect) Width() float64 { return r.r.X.Length() }

// Height returns the extent along Y.
func (r Rect) Height() float64 { return r.r.Y.Length() }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{v: r.r.Center()} }

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Point) bool { return r.r.ContainsPoint(p.v) }

// Expanded grows r by margin on every side.
func (r Rect) Expanded(margin float64) Rect {
	return Rect{r: r.r.ExpandedByMargin(margin)}
}
