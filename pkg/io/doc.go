// Package io reads and writes diagram files.
//
// # Formats
//
// Diagrams can be written as JSON or TOML. [FormatFromPath] picks the format
// from the file extension (.json, .toml); anything else is rejected with an
// INVALID_FORMAT error.
//
// JSON:
//
//	{
//	  "tables": [
//	    {"name": "users", "columns": [{"name": "id", "type": "uuid", "key": "PK"}]},
//	    {"name": "orders", "columns": [{"name": "user_id", "type": "uuid", "key": "FK"}]}
//	  ],
//	  "relations": [{"from": "orders.user_id", "to": "users.id"}]
//	}
//
// TOML:
//
//	[[tables]]
//	name = "users"
//	columns = [{ name = "id", type = "uuid", key = "PK" }]
//
//	[[relations]]
//	from = "orders.user_id"
//	to = "users.id"
//
// # Import
//
// Use [ImportDiagram] to read a file, or [ReadDiagram] to read from any
// io.Reader. Both validate the decoded diagram (names, duplicates and
// relation references) before returning it.
//
// # Export
//
// Use [ExportDiagram] or [WriteDiagram]. Laid-out geometry is written by
// package graph, not here.
package io
