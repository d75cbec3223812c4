// Package services defines shared utilities consumed by the cleanup workflow
// and its supporting packages.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, stage names, and file paths for
//     logging.
//   - Structured error markers plus the Wrap helper and Kind classifier that
//     turn failures into the short error kinds stored in run history.
//
// Use these helpers when wiring new file-level steps so error handling and
// observability stay uniform across runs.
package services
