package cover

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/halfcover/geom"
)

// R-tree fan-out, same heuristic as the arena collision trees.
const (
	treeDim      = 2
	treeMinChild = 25
	treeMaxChild = 50
)

// boxTol is the relative half-width given to point boxes and query boxes.
// rtreego treats touching boxes as disjoint, so every box gets a small
// positive extent scaled to the magnitude of its coordinates.
const boxTol = 1e-9

// spatialPoint adapts an input point to rtreego.Spatial.
type spatialPoint struct {
	idx  int
	pos  geom.Point
	rect rtreego.Rect
}

func (s *spatialPoint) Bounds() rtreego.Rect { return s.rect }

// pad returns a tolerance proportional to the largest coordinate magnitude.
func pad(vals ...float64) float64 {
	m := 1.0
	for _, v := range vals {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return boxTol * m
}

// Index is a static R-tree over a point set, used to count how many
// points fall inside a circle without scanning the whole set.
type Index struct {
	tree *rtreego.Rtree
	n    int
}

// NewIndex builds an R-tree over points. Coordinates must be finite.
//
// Complexity: O(n log n).
func NewIndex(points []geom.Point) (*Index, error) {
	objs := make([]rtreego.Spatial, 0, len(points))
	for i, p := range points {
		if !p.IsFinite() {
			return nil, ErrNonFiniteCoordinate
		}
		objs = append(objs, &spatialPoint{
			idx:  i,
			pos:  p,
			rect: rtreego.Point{p.X(), p.Y()}.ToRect(pad(p.X(), p.Y())),
		})
	}

	return &Index{
		tree: rtreego.NewTree(treeDim, treeMinChild, treeMaxChild, objs...),
		n:    len(points),
	}, nil
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return ix.n }

// Within returns, in ascending order, the indices of the points whose
// distance to c.Center is at most c.Radius + eps.
//
// Candidates come from a bounding-box search; each is then confirmed with
// the exact distance test.
func (ix *Index) Within(c geom.Circle, eps float64) ([]int, error) {
	r := c.Radius + eps
	cx, cy := c.Center.X(), c.Center.Y()
	tol := pad(cx, cy, r)
	bb, err := rtreego.NewRect(
		rtreego.Point{cx - r - tol, cy - r - tol},
		[]float64{2 * (r + tol), 2 * (r + tol)},
	)
	if err != nil {
		return nil, err
	}

	var out []int
	for _, s := range ix.tree.SearchIntersect(bb) {
		sp := s.(*spatialPoint)
		if c.Center.Dist(sp.pos) <= r {
			out = append(out, sp.idx)
		}
	}
	sort.Ints(out)

	return out, nil
}

// CountInside returns how many indexed points lie within c, widened by eps.
func (ix *Index) CountInside(c geom.Circle, eps float64) (int, error) {
	in, err := ix.Within(c, eps)
	if err != nil {
		return 0, err
	}

	return len(in), nil
}
