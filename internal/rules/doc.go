// Package rules holds the text classifiers and rewrites applied to caption
// lines.
//
// Every function here is a pure string transform or predicate over raw line
// text, markup included. The processors package decides which lines to feed
// through them and what to do with the result; nothing in this package knows
// about sections or documents.
//
// Go's regexp package has no lookaround, so the few rewrites that depend on
// surrounding context compile a plain pattern and check the context in code
// (see replaceGuarded). Matches that fail the check are retried one rune
// later, which keeps leftmost-match semantics.
package rules
