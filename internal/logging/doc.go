// Package logging builds the slog loggers used across perfin.
//
// Two output formats exist: a compact console format for interactive use
// ("ts LEVEL component: msg k=v") and machine-readable JSON. Construction is
// driven by the [logging] config section; tests use NewNop.
package logging
