// Package config loads, normalizes, and validates perfin configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: data and backup directories, record-entry defaults, gap-report
// limits, and logging options. Record-entry defaults deliberately travel on
// the Config value rather than a shared singleton, so callers receive them
// explicitly.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
