// Package geometry provides the 2-D value types used by the layout engine.
//
// All coordinates are abstract pixels in a top-left origin system where Y
// grows downward:
//
//	(0, 0) ----------------> x
//	  |
//	  |   origin *---------*
//	  |          |  center |
//	  |          *----*----*
//	  v
//	  y
//
// [Point], [Size] and [Rect] are plain values and safe to copy. [Path] is an
// ordered list of drawing commands that always begins with a move-to.
//
// Functions in this package never return errors. When a computation has no
// result, such as a segment that misses a rectangle, it is reported with a
// boolean.
package geometry
