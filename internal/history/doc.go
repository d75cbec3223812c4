// Package history persists one record per file run in a SQLite database.
//
// The store mirrors what the clean command did: the source and output paths,
// the detected encoding, the stage list, section and line counts before and
// after the pipeline, and the error kind when a run failed. Records are
// append-only; `subclean history clear` removes them all.
//
// The schema lives in schema.sql and is versioned through the schema_version
// table. When the schema changes, bump schemaVersion; existing databases with
// another version are rejected with ErrSchemaMismatch and must be cleared.
package history
