// Package halfcover finds two circles over a planar point set: both
// centred at points of the set, each holding at least half of all points,
// with the smaller radius as small as possible.
//
// 🚀 What is in the box?
//
//	A small, deterministic library plus a CLI:
//		• cover    — the solver: distances, coverage radii, pair selection, Verify
//		• geom     — Point (over golang/geo r2), Circle, Rect, circle polylines
//		• matrix   — dense row-major storage & distance-matrix validators
//		• task     — interactive state: add points, solve, cancel, clear, answer
//		• viewport — world ↔ screen coordinate mapping with zoom
//		• sample   — seeded random point sets
//		• cmd/halfcover — command-line front end
//
// Quick ASCII example:
//
//	  (-3,2)   (2,2)
//	      (0,0)   (3,0)
//
//	(-8,-7)
//
//	circle #1: center (2,2) radius 2√2 holds (2,2) (3,0) (0,0)
//	circle #2: center (0,0) radius 3   holds (0,0) (2,2) (3,0)
//
//	go get github.com/katalvlaran/halfcover/cover
package halfcover
