// Package geom defines the planar value types shared by halfcover:
// points, circles and axis-aligned bounds.
//
// Point is a thin value wrapper over r2.Point from github.com/golang/geo.
// All types are immutable values; methods never mutate the receiver.
//
// ⚙️ Usage:
//
//	p := geom.NewPoint(3, 4)
//	c := geom.NewCircle(geom.NewPoint(0, 0), 5)
//	c.Contains(p) // true: the disk is closed
//
//	ring, _ := c.Polyline(geom.DefaultSegments) // 40 points on the circumference
package geom
