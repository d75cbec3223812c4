// Package preflight provides readiness checks for the filesystem paths
// subclean depends on.
//
// `subclean config validate` runs them after the configuration parses so
// problems with the history database directory, the patterns file or the
// directories cleaned files are written to surface before a long batch.
//
// Each check is gated by its config toggle; disabled features are skipped.
package preflight
