package subtitles

import "strings"

// Timing holds the start and end tokens of a caption block. The tokens are
// opaque and are written back exactly as they were read.
type Timing struct {
	Start string
	End   string
}

func (t Timing) String() string {
	return t.Start + " --> " + t.End
}

// Section is one caption block: a timing range plus its display lines.
type Section struct {
	Timing Timing
	Lines  []Line
}

// NewSection creates a section with the given timing and lines.
func NewSection(timing Timing, lines ...Line) *Section {
	return &Section{Timing: timing, Lines: append([]Line(nil), lines...)}
}

// AddLine appends a line.
func (s *Section) AddLine(line Line) {
	s.Lines = append(s.Lines, line)
}

// RemoveLine drops the line at index and reports whether the section is now
// empty. Out-of-range indexes leave the section untouched.
func (s *Section) RemoveLine(index int) bool {
	if index >= 0 && index < len(s.Lines) {
		s.Lines = append(s.Lines[:index], s.Lines[index+1:]...)
	}
	return s.IsEmpty()
}

// IsEmpty reports whether no line has visible text.
func (s *Section) IsEmpty() bool {
	total := 0
	for _, line := range s.Lines {
		total += line.VisibleLength()
	}
	return total == 0
}

// Join returns the section's lines joined into a single line.
func (s *Section) Join() Line {
	return MergeLines(s.Lines)
}

// MergeLines replaces the section's lines with their join.
func (s *Section) MergeLines() {
	if len(s.Lines) == 0 {
		return
	}
	s.Lines = []Line{s.Join()}
}

// Content returns the raw lines separated by newlines.
func (s *Section) Content() string {
	parts := make([]string, len(s.Lines))
	for i, line := range s.Lines {
		parts[i] = line.Raw()
	}
	return strings.Join(parts, "\n")
}

// Len returns the number of lines.
func (s *Section) Len() int {
	return len(s.Lines)
}

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	return NewSection(s.Timing, s.Lines...)
}
