// Command perfin manages a philatelic collection library: collections, albums,
// and stamp records, with catalog-aware sorting, saved filters, CSV transfer,
// gap reports, and backups.
package main
