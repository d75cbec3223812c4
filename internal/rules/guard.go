package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// replaceGuarded replaces matches of re with template, like
// ReplaceAllString, but only where allow accepts the match. A rejected match
// is retried from the next rune so a later start can still succeed.
// Patterns passed here must not use ^, $ or \b since the search runs over
// suffixes of text.
func replaceGuarded(re *regexp.Regexp, text, template string, allow func(text string, start, end int) bool) string {
	var b strings.Builder
	last, pos := 0, 0
	replaced := false
	for pos <= len(text) {
		loc := re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		start, end := loc[0], loc[1]
		if !allow(text, start, end) {
			pos = start + runeWidth(text, start)
			continue
		}
		b.WriteString(text[last:start])
		b.Write(re.ExpandString(nil, template, text, loc))
		last = end
		replaced = true
		if end == start {
			pos = end + runeWidth(text, end)
		} else {
			pos = end
		}
	}
	if !replaced {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func runeWidth(text string, at int) int {
	if at >= len(text) {
		return 1
	}
	_, size := utf8.DecodeRuneInString(text[at:])
	return size
}
