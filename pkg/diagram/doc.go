// Package diagram defines the entity-relationship model that erdgraph lays
// out: tables with ordered columns, and relations between tables or
// individual columns.
//
// A [Diagram] is what users write (as JSON or TOML, see package io). It is
// converted into a scene graph with [Diagram.ToScene]: one record per table,
// headed by the table name, and one field per column in declaration order.
// Relations become edges between the matching records or fields.
//
// Relation endpoints are written as "table" or "table.column":
//
//	[[tables]]
//	name = "users"
//	columns = [{ name = "id", type = "uuid", key = "PK" }]
//
//	[[tables]]
//	name = "orders"
//	columns = [{ name = "user_id", type = "uuid", key = "FK" }]
//
//	[[relations]]
//	from = "orders.user_id"
//	to = "users.id"
package diagram
