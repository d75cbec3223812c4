// Package config loads, normalizes, and validates subclean configuration.
//
// It supplies defaults for every section, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SUBCLEAN_LOG_LEVEL environment
// fallback. Validation resolves stage names and compiles blacklist patterns
// up front so a bad setting is reported before any subtitle file is touched.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical stage names, and clear validation errors.
package config
