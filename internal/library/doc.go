// Package library persists the stamp collection hierarchy in SQLite.
//
// The Store manages database connections, schema migrations, and CRUD for the
// Collection → Album → Stamp tree plus saved filters. Parent/child ownership
// is explicit: albums carry a collection id, stamps carry an album id, and
// removals cascade through application-level deletes inside one transaction
// rather than relying on framework-managed inverse relationships.
//
// Catalog numbers are stored both raw and parsed (prefix, value, suffix
// columns) so listings can order naturally straight from SQL. Treat this
// package as the single source of truth for record semantics; schema changes
// add a migration under migrations/.
package library
