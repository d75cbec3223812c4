package subtitles

import "testing"

func TestLineStripStyles(t *testing.T) {
	line := NewLine("- <i>It's working.</i>")
	if got := line.StripStyles(); got != "- It's working." {
		t.Fatalf("StripStyles = %q", got)
	}
	if got := line.VisibleLength(); got != len("- It's working.") {
		t.Fatalf("VisibleLength = %d", got)
	}
}

func TestLineStripStylesIdempotent(t *testing.T) {
	inputs := []string{
		"<i>plain</i>",
		"<<i>>nested<</i>>",
		"unterminated <i",
		`<font color="#ffff00">colour</font>`,
		"<i></i>",
		"",
	}
	for _, input := range inputs {
		once := StripStyles(input)
		twice := StripStyles(once)
		if once != twice {
			t.Fatalf("strip not idempotent for %q: %q vs %q", input, once, twice)
		}
		if NewLine(twice).VisibleLength() != NewLine(once).VisibleLength() {
			t.Fatalf("visible length changed after second strip for %q", input)
		}
		if NewLine(input).VisibleLength() > len([]rune(input)) {
			t.Fatalf("visible length exceeds raw length for %q", input)
		}
	}
}

func TestLineVisibleLengthCountsRunes(t *testing.T) {
	if got := NewLine("<i>♪ Grüße ♪</i>").VisibleLength(); got != 9 {
		t.Fatalf("expected 9 runes, got %d", got)
	}
	if got := NewLine("<i> </i>").VisibleLength(); got != 0 {
		t.Fatalf("expected whitespace-only line to be empty, got %d", got)
	}
}

func TestLineIsDialog(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"- <i>This is a dialog.</i>", true},
		{"-this is also a dialog", true},
		{"<i>- tagged dialog</i>", true},
		{"</i><i>-double tag", true},
		{"‐unicode hyphen", true},
		{"not a dialog", false},
		{"i-in", false},
		{" - leading space", false},
	}
	for _, tc := range cases {
		if got := NewLine(tc.text).IsDialog(); got != tc.want {
			t.Fatalf("IsDialog(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestMergeLinesKeepsMarkup(t *testing.T) {
	merged := MergeLines([]Line{NewLine("<i>Go on now.</i>"), NewLine("<i>What you got?</i>")})
	if merged.Raw() != "<i>Go on now.</i> <i>What you got?</i>" {
		t.Fatalf("unexpected merge: %q", merged.Raw())
	}
	if merged.VisibleLength() != 24 {
		t.Fatalf("expected visible length 24, got %d", merged.VisibleLength())
	}
}

func TestSectionEmptiness(t *testing.T) {
	section := NewSection(Timing{Start: "a", End: "b"}, NewLine("<i></i>"), NewLine("  "))
	if !section.IsEmpty() {
		t.Fatal("expected markup-only section to be empty")
	}
	section.AddLine(NewLine("x"))
	if section.IsEmpty() {
		t.Fatal("expected section with text to be non-empty")
	}
	if empty := section.RemoveLine(2); !empty {
		t.Fatal("expected section to become empty after removing the only visible line")
	}
	if section.Len() != 2 {
		t.Fatalf("expected 2 lines left, got %d", section.Len())
	}
}

func TestSectionMergeLines(t *testing.T) {
	section := NewSection(Timing{}, NewLine("one"), NewLine("two"))
	section.MergeLines()
	if section.Len() != 1 || section.Lines[0].Raw() != "one two" {
		t.Fatalf("unexpected merged section: %q", section.Content())
	}
}

func TestDocumentRemoveEmptySections(t *testing.T) {
	doc := NewDocument(
		NewSection(Timing{Start: "1"}, NewLine("keep")),
		NewSection(Timing{Start: "2"}),
		NewSection(Timing{Start: "3"}, NewLine("<i></i>")),
		NewSection(Timing{Start: "4"}, NewLine("keep too")),
	)
	if removed := doc.RemoveEmptySections(); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if doc.SectionCount() != 2 {
		t.Fatalf("expected 2 sections, got %d", doc.SectionCount())
	}
	if doc.Sections[0].Timing.Start != "1" || doc.Sections[1].Timing.Start != "4" {
		t.Fatal("expected section order to be preserved")
	}
	if doc.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", doc.LineCount())
	}
}

func TestDocumentRemoveEmptySectionsOnEmptyDocument(t *testing.T) {
	doc := NewDocument()
	if removed := doc.RemoveEmptySections(); removed != 0 {
		t.Fatalf("expected nothing removed, got %d", removed)
	}
}
