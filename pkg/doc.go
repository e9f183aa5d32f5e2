// Package pkg holds the erdgraph libraries.
//
// # Overview
//
// erdgraph turns an entity-relationship diagram into geometry: where every
// table and column sits, where connectors may attach, which path each
// relation takes and which points around the tables a router may pass
// through. The packages fall into three groups:
//
//  1. Engine: [geometry], [scene] and [layout] form a pure, single-threaded
//     transform over a scene graph.
//  2. Model and serialization: [diagram] describes tables and relations,
//     [graph] is the exported layout, [io] reads and writes diagram files.
//  3. Infrastructure: [pipeline] sequences the stages with caching ([cache]),
//     persistence ([store]), hooks ([observability]) and coded errors
//     ([errors]).
//
// # Data flow
//
//	diagram.toml / diagram.json
//	         ↓
//	    [io] (decode and validate)
//	         ↓
//	    [diagram] (tables, columns, relations → scene graph)
//	         ↓
//	    [layout] (place → anchors → route → junctions)
//	         ↓
//	    [graph] (layout.json)
//
// # Quick Start
//
//	d, err := io.ImportDiagram("shop.toml")
//	if err != nil {
//	    return err
//	}
//	res, err := pipeline.NewRunner(nil, nil, nil).Execute(ctx, d, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	return graph.WriteLayoutFile(res.Layout, "shop.layout.json")
package pkg
