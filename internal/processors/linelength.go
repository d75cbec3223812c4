package processors

import "subclean/internal/subtitles"

// LineLength rejoins captions that were wrapped onto several lines. Lines are
// grouped into speaker turns, each starting at a dialog line, and a turn is
// merged into one line when the result is shorter than Threshold visible
// characters. Turns are never merged with each other.
type LineLength struct {
	Threshold int
}

func (LineLength) Name() string { return "LineLength" }

func (l LineLength) Process(doc *subtitles.Document) *subtitles.Document {
	threshold := l.threshold()
	for _, section := range doc.Sections {
		if section.Len() < 2 {
			continue
		}
		var lines []subtitles.Line
		for _, chunk := range SplitDialogChunks(section.Lines) {
			lines = append(lines, mergeChunk(chunk, threshold)...)
		}
		section.Lines = lines
	}
	return doc
}

func (l LineLength) threshold() int {
	if l.Threshold <= 0 {
		return DefaultLineLength
	}
	return l.Threshold
}

// SplitDialogChunks partitions lines into consecutive chunks, starting a new
// chunk at every dialog line after the first position. Concatenating the
// chunks gives back the input.
func SplitDialogChunks(lines []subtitles.Line) [][]subtitles.Line {
	if len(lines) == 0 {
		return nil
	}
	var chunks [][]subtitles.Line
	start := 0
	for i := 1; i < len(lines); i++ {
		if lines[i].IsDialog() {
			chunks = append(chunks, lines[start:i])
			start = i
		}
	}
	return append(chunks, lines[start:])
}

func mergeChunk(chunk []subtitles.Line, threshold int) []subtitles.Line {
	if len(chunk) == 1 {
		return chunk
	}
	merged := subtitles.MergeLines(chunk)
	if merged.VisibleLength() < threshold {
		return []subtitles.Line{merged}
	}
	return chunk
}
