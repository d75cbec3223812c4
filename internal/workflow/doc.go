// Package workflow cleans subtitle files end to end.
//
// The Manager owns one compiled pipeline and runs it over each requested file:
// it resolves the format, reads and decodes the bytes, parses the document,
// applies the stages, serializes the result, writes it through a locked
// atomic write and records the run in history. Files run concurrently up to
// the configured worker count; a failing file is logged and recorded but never
// stops the others. Cancellation is checked before each file starts.
package workflow
