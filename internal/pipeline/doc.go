// Package pipeline applies an ordered list of processors to a subtitle
// document and reports what each stage changed.
//
// A Pipeline is immutable once built and holds no per-run state, so one
// instance can serve several files concurrently. Stages always run to
// completion; cancellation is the caller's concern between documents.
package pipeline
