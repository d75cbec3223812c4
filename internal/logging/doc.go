// Package logging assembles structured slog loggers and formatting helpers used
// across subclean.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so workflow code can tag log
// lines with run IDs, files, and stage names. Output goes to stderr by default
// so cleaned subtitles can be streamed on stdout. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
