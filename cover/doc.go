// Package cover solves the two-circle half-coverage problem.
//
// 🚀 What is the problem?
//
//	Given a finite set of planar points, pick two of them as circle
//	centers so that each circle holds at least half of all points and the
//	smaller of the two radii is as small as possible.
//
// The half-coverage constraint is evaluated per circle: a point may lie in
// both circles, one, or neither. The objective therefore decomposes into
// finding the point with the smallest coverage radius (it becomes circle A)
// and pairing it with the point whose coverage radius is next smallest
// (circle B).
//
// Pipeline:
//
//	points ─▶ DistanceMatrix ─▶ CoverageRadii ─▶ SelectPair ─▶ Solution
//	           O(n²)             O(n² log n)       O(n)
//
// Coverage radius:
//
//	For point i, sort the distances from i to every point (itself
//	included, at distance 0) and read the element at
//	CenterIndex(n) = n/2 − 1 + n%2. Reading up to that position selects
//	ceil(n/2) points, so the value is the smallest closed-disk radius
//	around i holding at least half the set.
//
// ⚙️ Usage:
//
//	sol, err := cover.Solve(ctx, points)
//	if errors.Is(err, cover.ErrInsufficientPoints) {
//	  // need at least two points
//	}
//	fmt.Println(sol.A, sol.B)
//
//	rep, err := cover.Verify(points, sol) // R-tree backed recount
//
// Determinism: ties keep the lowest input index. Solve never retains or
// mutates its input; it works on a private snapshot. The package never
// logs.
package cover
