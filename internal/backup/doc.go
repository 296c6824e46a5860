// Package backup writes and restores JSON snapshots of the whole library.
//
// Snapshots carry a generated identifier, the schema version they were taken
// from, and the full Collection → Album → Stamp tree. A lock file under the
// backup directory keeps concurrent backup/restore invocations from running
// over each other.
package backup
