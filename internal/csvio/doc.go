// Package csvio reads and writes the stamp CSV interchange format.
//
// The column set is a stable application contract:
//
//	catalog_number,catalog_system,country,year,denomination,color,condition,status,notes
//
// Import is forgiving: rows with problems are reported with their line number
// and skipped instead of aborting the batch, and empty cells fall back to the
// configured record defaults.
package csvio
