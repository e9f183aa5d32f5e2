// Package layout turns an unplaced scene graph into absolute geometry.
//
// # Stages
//
// An [Engine] runs four stages over a [scene.Document], each depending on the
// output of the one before it:
//
//  1. [Engine.PlaceNodes] stacks records left to right and fields top to
//     bottom inside their record, and returns the view box.
//  2. [Engine.PlaceConnectionPoints] appends anchors to every record and
//     field following a fixed rule table keyed on sibling position.
//  3. [Engine.RouteEdges] picks the closest anchor pair for every edge and
//     builds an orthogonal connector with rounded joints.
//  4. [Engine.MapJunctions] records candidate points around records for
//     obstacle-aware routing. Routing does not consume them.
//
// [Engine.Run] executes all four in order. Running a stage before its
// predecessor is a programming error; the stages skip what they cannot
// handle instead of failing, and the gaps surface when the document is
// exported (see package graph).
//
// # Placement
//
// With the default [Config], a document holding a two-field record A and a
// one-field record B places A at (50, 80) with size 300x70 and B at
// (430, 80) with size 300x35:
//
//	 (50,80)                  (430,80)
//	   +--------- A ---------+    +--------- B ---------+
//	   | field 1             |    | field 1             |
//	   +---------------------+    +---------------------+
//	   | field 2             |
//	   +---------------------+
//
// # Anchors
//
// Records always get four anchors (top, right, bottom and left midpoints).
// Fields get a subset depending on where they sit in their record:
//
//	only field      top, right, bottom, left
//	first of >= 2   top, right, left
//	last of >= 2    right, bottom, left
//	interior        right, left
//
// # Determinism
//
// The engine holds no state besides its configuration and iterates only over
// ordered slices. Running it twice on identical documents yields identical
// geometry. Ties in anchor selection keep the first pair found with start
// anchors in the outer loop and end anchors in the inner loop.
package layout
