// Package graph provides the serialization format for laid-out diagrams.
//
// This package sits at the boundary between the scene graph that the layout
// engine mutates and everything downstream of it: JSON files, API responses,
// the layout cache and the layout store.
//
//   - pkg/scene.Document: internal arena, mutated in place by pkg/layout
//   - [Layout]: flat, serializable geometry (this package)
//
// Use [FromDocument] to convert a fully laid-out document.
//
// # Core Types
//
//   - [Layout]: view box, records, edges and junctions
//   - [Record], [Field]: placed shapes with their anchors
//   - [Edge]: chosen anchors plus path commands and SVG path data
//   - [Junction]: advisory routing candidates
//
// # Layout Serialization
//
//	{
//	  "view_box": {"width": 780, "height": 230},
//	  "records": [{"id": 1, "label": "users", "x": 50, "y": 80, ...}],
//	  "edges": [{"from": 3, "to": 5, "path": "M350 132.5 L384 132.5 ..."}]
//	}
//
// Common operations:
//
//	l, err := graph.FromDocument(doc, viewBox)   // Document → Layout
//	data, _ := graph.MarshalLayout(l)            // Layout → []byte
//	l, _ = graph.ReadLayoutFile("shop.json")     // File → Layout
//
// # Preconditions
//
// [FromDocument] is where a pipeline ordering fault surfaces. A record or
// field without a frame, or an edge without a path, yields an error coded
// NOT_LAID_OUT naming the offending node or edge. It is never a per-node,
// recoverable condition; callers abort the run.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
