// Package viewport maps between the real-valued world of a point set and
// the integer pixel grid of a window.
//
// The world Y axis points up; the screen Y axis points down, so every
// mapping flips Y. Rendering itself is left to the caller.
package viewport

import (
	"errors"
	"math"

	"github.com/katalvlaran/halfcover/geom"
)

var (
	// ErrEmptyWorld is returned when the world rectangle has no area.
	ErrEmptyWorld = errors.New("viewport: world rectangle has no area")

	// ErrEmptyScreen is returned when the screen is narrower than 2×2 pixels.
	ErrEmptyScreen = errors.New("viewport: screen must be at least 2x2 pixels")

	// ErrBadScale is returned for a non-positive or non-finite zoom factor.
	ErrBadScale = errors.New("viewport: scale factor must be finite and > 0")
)

// WheelSensitivity converts a mouse-wheel delta into a zoom factor
// increment: factor = 1 + delta*WheelSensitivity.
const WheelSensitivity = 0.001

// Screen is a pixel grid of Width×Height; (0,0) is the top-left pixel.
type Screen struct {
	Width, Height int
}

// Viewport binds a world rectangle to a screen.
type Viewport struct {
	world  geom.Rect
	screen Screen
}

// New validates and returns a viewport.
func New(world geom.Rect, screen Screen) (*Viewport, error) {
	if world.IsEmpty() || world.Width() <= 0 || world.Height() <= 0 {
		return nil, ErrEmptyWorld
	}
	if screen.Width < 2 || screen.Height < 2 {
		return nil, ErrEmptyScreen
	}

	return &Viewport{world: world, screen: screen}, nil
}

// World returns the current world rectangle.
func (v *Viewport) World() geom.Rect { return v.world }

// Screen returns the bound screen.
func (v *Viewport) Screen() Screen { return v.screen }

// Resize rebinds the viewport to a new screen size.
func (v *Viewport) Resize(s Screen) error {
	if s.Width < 2 || s.Height < 2 {
		return ErrEmptyScreen
	}
	v.screen = s

	return nil
}

// ToScreen maps a world point to the nearest pixel. Points outside the
// world map outside the screen; no clamping is applied.
func (v *Viewport) ToScreen(p geom.Point) (x, y int) {
	lo, hi := v.world.Min(), v.world.Max()
	fx := (p.X() - lo.X()) / v.world.Width() * float64(v.screen.Width-1)
	fy := (hi.Y() - p.Y()) / v.world.Height() * float64(v.screen.Height-1)

	return int(math.Round(fx)), int(math.Round(fy))
}

// ToWorld maps a pixel back to world coordinates.
func (v *Viewport) ToWorld(x, y int) geom.Point {
	lo, hi := v.world.Min(), v.world.Max()
	wx := lo.X() + float64(x)/float64(v.screen.Width-1)*v.world.Width()
	wy := hi.Y() - float64(y)/float64(v.screen.Height-1)*v.world.Height()

	return geom.NewPoint(wx, wy)
}

// Scale zooms the world by factor around center: factor > 1 widens the
// visible area, factor < 1 narrows it. center stays fixed on screen.
func (v *Viewport) Scale(factor float64, center geom.Point) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrBadScale
	}
	lo := center.Add(v.world.Min().Sub(center).Mul(factor))
	hi := center.Add(v.world.Max().Sub(center).Mul(factor))
	next := geom.RectFromPoints(lo, hi)
	if next.Width() <= 0 || next.Height() <= 0 {
		return ErrEmptyWorld
	}
	v.world = next

	return nil
}

// Wheel applies a mouse-wheel zoom around the pixel (x, y).
func (v *Viewport) Wheel(delta float64, x, y int) error {
	return v.Scale(1+delta*WheelSensitivity, v.ToWorld(x, y))
}

// Ring maps a world polyline (e.g. geom.Circle.Polyline) to pixels.
func (v *Viewport) Ring(ring []geom.Point) [][2]int {
	out := make([][2]int, len(ring))
	for i, p := range ring {
		out[i][0], out[i][1] = v.ToScreen(p)
	}

	return out
}
