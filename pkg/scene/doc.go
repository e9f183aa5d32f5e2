// Package scene holds the scene graph that the layout engine reads and
// writes: an arena of nodes addressed by dense integer identifiers plus a
// flat list of edges.
//
// # Structure
//
// Every [Document] starts with a single body node ([BodyID]). Records are
// children of the body and fields are children of a record, so the tree is
// at most three levels deep:
//
//	body
//	├── record "users"
//	│   ├── field "id"
//	│   └── field "email"
//	└── record "orders"
//	    └── field "user_id"
//
// Child order is insertion order and is the only ordering that exists:
// records are laid out left to right and fields top to bottom in exactly the
// order they were added. Nothing re-sorts it.
//
// # Growth Only
//
// Nodes are never removed and identifiers are never reused. Connection
// points are appended by the anchor stage and never reordered, so a
// [ConnectionPointID] stays valid for the lifetime of the document.
//
// # Geometry
//
// A freshly built document carries no geometry. [Node.Frame] reports false
// until the placement stage has assigned an origin and size, and
// [Edge.Path] stays nil until routing has run. Consumers that find either
// missing after a full layout run are looking at a pipeline ordering fault.
//
// # Concurrency
//
// A Document is not safe for concurrent use. The layout stages mutate it in
// place and expect exclusive access for the duration of a run.
package scene
