package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	simpleHIAllowed   = regexp.MustCompile(`^[^a-hj-z.,;?!]*$`)
	simpleHIMarker    = regexp.MustCompile(`[A-Z]{2,}|♪`)
	wrappedAnnotation = regexp.MustCompile(`^[-‐\s<i>]*[(\[*][^)\]]+[)\]*</i>]+$`)
	musicCue          = regexp.MustCompile(`^[- ♪<i>]*\s?([-‐a-z,]+\s)*\b(music(al)?|song|track)\b\s?(((play|swell)(s|ing)|intensifies|crescendo|sting)|(fades (in|out)))?\b(\s?over\s(headphones|speakers))?[\s♪</i>]*$|vocalizing`)

	speakerLabel     = regexp.MustCompile(`^((?:[-‐‑\s]|<[^>]*>)*)([A-Z][-A-Za-z.']*\s?#?\d?(?:[A-Z][-A-Za-z.']*\s?#?\d?)?)(?:[\[(][\w\s]*[\])])?(:)(</?i>)?\s*`)
	bracketLabel     = regexp.MustCompile(`^((?:[-‐‑\s]|<[^>]*>)*)\[+[^\]]*\]+:?(</?i>)?\s*`)
	inlineAnnotation = regexp.MustCompile(`[(\[*].*?[)\]*:]+`)
)

var bracketPairs = [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}}

// IsSimpleHI reports an all-caps or music-symbol-only utterance: no lowercase
// letter other than "i", none of `.,;?!`, and either a run of capitals or a
// music symbol.
func IsSimpleHI(text string) bool {
	return simpleHIAllowed.MatchString(text) && simpleHIMarker.MatchString(text)
}

// IsWrappedAnnotation reports a line that is nothing but a bracketed or
// parenthesised description, optionally after a dialog dash.
func IsWrappedAnnotation(text string) bool {
	return wrappedAnnotation.MatchString(text)
}

// IsMusicCue reports a music or vocal cue such as "♪ soft music playing ♪".
func IsMusicCue(text string) bool {
	return musicCue.MatchString(text)
}

// IsUnbalanced reports a line whose (), [] or {} counts disagree.
func IsUnbalanced(text string) bool {
	for _, pair := range bracketPairs {
		if strings.Count(text, pair[0]) != strings.Count(text, pair[1]) {
			return true
		}
	}
	return false
}

// IsPureAnnotation reports a line that carries no dialogue at all and should
// be dropped whole.
func IsPureAnnotation(text string) bool {
	return IsSimpleHI(text) || IsWrappedAnnotation(text) || IsMusicCue(text)
}

// ShouldDropSDH combines the whole-line checks. It always runs before
// CleanAnnotations so a line that is both pure and partial is dropped.
func ShouldDropSDH(text string) bool {
	return IsPureAnnotation(text) || IsUnbalanced(text)
}

// ContainsAnnotation reports a leading speaker label or any inline
// bracketed annotation.
func ContainsAnnotation(text string) bool {
	if matchLabel(text) != nil {
		return true
	}
	return inlineAnnotation.MatchString(text)
}

// CleanAnnotations strips a leading speaker label, keeping its dash prefix and
// an adjacent italic tag, then removes inline annotations. A bracketed name
// followed by a speaker label ("[Laura] JOHN: hi") loses both labels.
func CleanAnnotations(text string) string {
	if loc := matchSpeaker(text); loc != nil {
		text = stripLabel(text, loc)
	} else if loc := bracketLabel.FindStringSubmatchIndex(text); loc != nil {
		text = stripLabel(text, loc)
		if loc := matchSpeaker(text); loc != nil {
			text = stripLabel(text, loc)
		}
	}
	return inlineAnnotation.ReplaceAllString(text, "")
}

// stripLabel removes the label located by loc. Group 1 is the prefix to keep
// and the last group is the optional tag after the label.
func stripLabel(text string, loc []int) string {
	var b strings.Builder
	b.WriteString(text[loc[2]:loc[3]])
	if tag := len(loc) - 2; loc[tag] >= 0 {
		b.WriteString(text[loc[tag]:loc[tag+1]])
	}
	b.WriteString(text[loc[1]:])
	return b.String()
}

// matchLabel returns the submatch indexes of a speaker or bracketed label at
// line start.
func matchLabel(text string) []int {
	if loc := matchSpeaker(text); loc != nil {
		return loc
	}
	return bracketLabel.FindStringSubmatchIndex(text)
}

// matchSpeaker matches NAME: labels. "Mr." style abbreviations and colons
// followed by a word character ("9:17") are not labels.
func matchSpeaker(text string) []int {
	loc := speakerLabel.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	wordsEnd, colonEnd := loc[5], loc[7]
	if strings.HasPrefix(text[wordsEnd:], ".") || startsWithWordChar(text[colonEnd:]) {
		return nil
	}
	return loc
}

func startsWithWordChar(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
