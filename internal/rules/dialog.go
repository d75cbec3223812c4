package rules

import "regexp"

var dialogDash = regexp.MustCompile(`^((?:<[^>]*>)*)[-‐‑]+\s*`)

// NormalizeDialogDash rewrites a leading dash run, after any tags, to "- ".
// Hyphens anywhere else are left alone.
func NormalizeDialogDash(text string) string {
	return dialogDash.ReplaceAllString(text, "${1}- ")
}
