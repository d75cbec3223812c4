// Package processors implements the cleanup stages that run over a parsed
// subtitle document.
//
// Each stage satisfies Processor and holds only immutable configuration, so a
// single instance can serve many documents at once. Stages are selected by
// name through a Registry; names are case-insensitive and ErrorFix also
// answers to "Error". The default order is Blacklist, SDH, Dialog, ErrorFix,
// LineLength, Style. Order matters: LineLength merges lines, so it must run
// after the stages that delete them, and Style cleans up markup the others
// leave behind.
package processors
