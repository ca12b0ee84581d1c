package cover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/halfcover/geom"
)

// DefaultEpsilon absorbs floating-point rounding for points that sit
// exactly on a circle boundary.
const DefaultEpsilon = 1e-9

// VerifyOption configures Verify.
type VerifyOption func(*verifyOptions)

type verifyOptions struct {
	eps float64
}

func defaultVerifyOptions() verifyOptions {
	return verifyOptions{eps: DefaultEpsilon}
}

// WithEpsilon sets the distance tolerance used when counting boundary
// points. It panics on a negative or non-finite value (programmer error).
func WithEpsilon(eps float64) VerifyOption {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("cover: WithEpsilon(%v): epsilon must be finite and >= 0", eps))
	}

	return func(o *verifyOptions) { o.eps = eps }
}

// Report is the outcome of a coverage recount.
type Report struct {
	N        int // number of points
	Required int // ceil(N/2)
	InsideA  int // points within circle A
	InsideB  int // points within circle B
}

// OK reports whether both circles reach the required count.
func (r Report) OK() bool {
	return r.InsideA >= r.Required && r.InsideB >= r.Required
}

// Verify recounts, through an R-tree, how many of points each circle of
// sol holds. The returned Report is always filled when the points are
// valid; ErrCoverageViolated is returned alongside it when a circle falls
// short.
func Verify(points []geom.Point, sol Solution, opts ...VerifyOption) (Report, error) {
	cfg := defaultVerifyOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validatePoints(points); err != nil {
		return Report{}, err
	}

	ix, err := NewIndex(points)
	if err != nil {
		return Report{}, err
	}
	rep := Report{N: len(points), Required: Required(len(points))}
	if rep.InsideA, err = ix.CountInside(sol.A, cfg.eps); err != nil {
		return Report{}, err
	}
	if rep.InsideB, err = ix.CountInside(sol.B, cfg.eps); err != nil {
		return Report{}, err
	}

	if !rep.OK() {
		return rep, fmt.Errorf("%w: need %d, circle A holds %d, circle B holds %d",
			ErrCoverageViolated, rep.Required, rep.InsideA, rep.InsideB)
	}

	return rep, nil
}
