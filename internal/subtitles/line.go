package subtitles

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	markupPattern = regexp.MustCompile(`<[^>]*>`)
	dialogPattern = regexp.MustCompile(`^(?:<[^>]*>)*[-‐‑]`)
)

// Line is a single caption line. The raw text, markup included, is the source
// of truth; every other measure is derived from it.
type Line struct {
	raw string
}

// NewLine wraps raw caption text.
func NewLine(raw string) Line {
	return Line{raw: raw}
}

// Raw returns the text exactly as stored, markup included.
func (l Line) Raw() string {
	return l.raw
}

func (l Line) String() string {
	return l.raw
}

// StripStyles removes every tag-like span. Unmatched tags are removed one by
// one, so stripping is idempotent.
func (l Line) StripStyles() string {
	return StripStyles(l.raw)
}

// VisibleLength counts the runes left after markup is removed. Lines whose
// visible text is only whitespace report zero.
func (l Line) VisibleLength() int {
	visible := l.StripStyles()
	if strings.TrimSpace(visible) == "" {
		return 0
	}
	return utf8.RuneCountInString(visible)
}

// IsDialog reports whether the line opens a speaker turn: after any leading
// tags, its first character is a dash.
func (l Line) IsDialog() bool {
	return dialogPattern.MatchString(l.raw)
}

// IsBlank reports whether the raw text is empty after trimming.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.raw) == ""
}

// Sub returns a new Line with every match of re replaced by repl.
func (l Line) Sub(re *regexp.Regexp, repl string) Line {
	return Line{raw: re.ReplaceAllString(l.raw, repl)}
}

// Map returns a new Line with fn applied to the raw text.
func (l Line) Map(fn func(string) string) Line {
	return Line{raw: fn(l.raw)}
}

// MergeLines joins the raw text of lines with single spaces. Markup is carried
// over untouched; callers merge only lines that earlier stages already cleaned.
func MergeLines(lines []Line) Line {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.raw
	}
	return Line{raw: strings.Join(parts, " ")}
}

// StripStyles removes every tag-like span from text.
func StripStyles(text string) string {
	return markupPattern.ReplaceAllString(text, "")
}
