package subtitles

import (
	"bufio"
	"strconv"
	"strings"
	"unicode"
)

const timingSeparator = "-->"

type parserState int

const (
	expectIndex parserState = iota
	expectTiming
	collectingContent
)

// SRT implements the SubRip format.
type SRT struct{}

func (SRT) Name() string { return "srt" }

func (SRT) Extensions() []string { return []string{".srt"} }

// Parse builds a Document from SRT text. Index numbers are discarded; a blank
// line closes a block and the next timing line opens a new section. Caption
// text that appears before any timing line is a ParseError.
func (SRT) Parse(text string) (*Document, error) {
	lines := splitLines(text)
	lines = append(lines, "")

	doc := NewDocument()
	var active *Section
	state := expectIndex
	for i, line := range lines {
		switch {
		case line == "":
			state = expectIndex
		case isIndex(line) && (state != collectingContent || nextIsTiming(lines, i)):
			state = expectTiming
		case strings.Contains(line, timingSeparator):
			active = NewSection(parseTiming(line))
			doc.AddSection(active)
			state = collectingContent
		default:
			if active == nil {
				return nil, &ParseError{Line: i + 1, Text: line, Err: ErrMalformedBlock}
			}
			active.AddLine(NewLine(line))
			state = collectingContent
		}
	}
	return doc, nil
}

// Serialize writes doc as SRT, numbering sections 1..N by position. Blank
// lines are skipped because they would terminate the block on re-read.
func (SRT) Serialize(doc *Document) string {
	var b strings.Builder
	if doc == nil {
		return ""
	}
	for i, section := range doc.Sections {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('\n')
		b.WriteString(section.Timing.String())
		b.WriteByte('\n')
		for _, line := range section.Lines {
			text := strings.TrimSpace(line.Raw())
			if text == "" {
				continue
			}
			b.WriteString(text)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseSRT parses SRT text.
func ParseSRT(text string) (*Document, error) {
	return SRT{}.Parse(text)
}

// SerializeSRT renders doc as SRT text.
func SerializeSRT(doc *Document) string {
	return SRT{}.Serialize(doc)
}

func splitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines
}

func parseTiming(line string) Timing {
	parts := strings.SplitN(line, timingSeparator, 2)
	return Timing{
		Start: strings.TrimSpace(parts[0]),
		End:   strings.TrimSpace(parts[1]),
	}
}

func isIndex(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// nextIsTiming reports whether the next non-blank line after i is a timing
// line. A digits-only line inside a block is an index only in that case.
func nextIsTiming(lines []string, i int) bool {
	for _, line := range lines[i+1:] {
		if line == "" {
			continue
		}
		return strings.Contains(line, timingSeparator)
	}
	return false
}
