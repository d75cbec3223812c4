package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&quot;", `"`,
		"&#39;", "'",
		"&apos;", "'",
	)
	musicShorthand   = regexp.MustCompile(`^#\s`)
	missingSpace     = regexp.MustCompile(`\b([.?!]+)([A-Z][a-z])`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?]+)`)
	spaceAfterPunct  = regexp.MustCompile(`([.,!?]+)\s{2,}`)
	dialogOnly       = regexp.MustCompile(`^(?:<[^>]*>)*[-‐‑]$`)
)

// ErrorFixes lists the rewrites FixErrors applies, in order. Later fixes
// assume earlier ones already ran.
var ErrorFixes = []func(string) string{
	DecodeEntities,
	FixMusicShorthand,
	FixSentenceSpacing,
	CollapseWhitespace,
	FixSpaceBeforePunctuation,
	FixSpaceAfterPunctuation,
}

// FixErrors applies every entry of ErrorFixes to text.
func FixErrors(text string) string {
	for _, fix := range ErrorFixes {
		text = fix(text)
	}
	return text
}

// DecodeEntities turns the HTML entities common in scraped captions back into
// characters and collapses the doubled apostrophe "'’".
func DecodeEntities(text string) string {
	return strings.ReplaceAll(entityReplacer.Replace(text), "'’", "'")
}

// FixMusicShorthand turns a leading "# " into the music symbol.
func FixMusicShorthand(text string) string {
	return musicShorthand.ReplaceAllString(text, "♪ ")
}

// FixSentenceSpacing inserts the missing space in "end.Next".
func FixSentenceSpacing(text string) string {
	return missingSpace.ReplaceAllString(text, "$1 $2")
}

// CollapseWhitespace reduces every whitespace run to one space and trims the
// line. Tags count as zero-width: whitespace on either side of a tag run
// collapses into one space placed before the tags, and edge whitespace is
// trimmed even when tags sit at the ends of the line.
func CollapseWhitespace(text string) string {
	var out, held strings.Builder
	pendingSpace, seenText := false, false
	for i := 0; i < len(text); {
		if n := tagWidth(text[i:]); n > 0 {
			if pendingSpace {
				held.WriteString(text[i : i+n])
			} else {
				out.WriteString(text[i : i+n])
			}
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			pendingSpace = pendingSpace || seenText
			i += size
			continue
		}
		if pendingSpace {
			out.WriteByte(' ')
			pendingSpace = false
		}
		out.WriteString(held.String())
		held.Reset()
		out.WriteString(text[i : i+size])
		seenText = true
		i += size
	}
	out.WriteString(held.String())
	return out.String()
}

// FixSpaceBeforePunctuation removes whitespace before a punctuation run,
// except after an ellipsis or a lone leading dialog dash.
func FixSpaceBeforePunctuation(text string) string {
	return replaceGuarded(spaceBeforePunct, text, "$1", func(text string, start, _ int) bool {
		prefix := text[:start]
		return !strings.HasSuffix(prefix, "...") && !dialogOnly.MatchString(prefix)
	})
}

// FixSpaceAfterPunctuation collapses repeated whitespace after punctuation
// unless it runs to the end of the line.
func FixSpaceAfterPunctuation(text string) string {
	return replaceGuarded(spaceAfterPunct, text, "$1 ", func(text string, _, end int) bool {
		return end < len(text)
	})
}

// tagWidth returns the byte length of the tag at the start of text, or 0.
func tagWidth(text string) int {
	if !strings.HasPrefix(text, "<") {
		return 0
	}
	end := strings.IndexByte(text, '>')
	if end < 0 {
		return 0
	}
	return end + 1
}
