package processors

import (
	"strings"
	"testing"

	"subclean/internal/subtitles"
)

func TestLineLengthMergesShortWrap(t *testing.T) {
	doc := subtitles.NewDocument(section("Go on now.", "What you got?"))
	out := LineLength{Threshold: 50}.Process(doc)
	lines := out.Sections[0].Lines
	if len(lines) != 1 || lines[0].Raw() != "Go on now. What you got?" {
		t.Fatalf("unexpected lines %q", out.Sections[0].Content())
	}
}

func TestLineLengthNeverMergesAcrossSpeakers(t *testing.T) {
	doc := subtitles.NewDocument(section("- hi", "bob", "- bye", "bob"))
	out := LineLength{}.Process(doc)
	if got := out.Sections[0].Content(); got != "- hi bob\n- bye bob" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestLineLengthKeepsLongChunk(t *testing.T) {
	first := strings.Repeat("a", 30)
	second := strings.Repeat("b", 19)
	doc := subtitles.NewDocument(section(first, second))
	out := LineLength{Threshold: 50}.Process(doc)
	if out.Sections[0].Len() != 2 {
		t.Fatalf("expected a 50-rune merge to be rejected, got %q", out.Sections[0].Content())
	}

	doc = subtitles.NewDocument(section(first, second[:18]))
	out = LineLength{Threshold: 50}.Process(doc)
	if out.Sections[0].Len() != 1 {
		t.Fatalf("expected a 49-rune merge to be accepted, got %q", out.Sections[0].Content())
	}
}

func TestLineLengthMeasuresVisibleText(t *testing.T) {
	doc := subtitles.NewDocument(section(`<font color="#ffffff">Go on now.</font>`, "<i>What you got?</i>"))
	out := LineLength{Threshold: 25}.Process(doc)
	if out.Sections[0].Len() != 1 {
		t.Fatalf("expected markup to be ignored when measuring, got %q", out.Sections[0].Content())
	}
}

func TestLineLengthSingleLineSectionUntouched(t *testing.T) {
	doc := subtitles.NewDocument(section("only"))
	out := LineLength{}.Process(doc)
	if got := out.Sections[0].Content(); got != "only" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestSplitDialogChunks(t *testing.T) {
	lines := []subtitles.Line{
		subtitles.NewLine("hi"),
		subtitles.NewLine("-bob"),
		subtitles.NewLine("- bye"),
		subtitles.NewLine("bob"),
	}
	chunks := SplitDialogChunks(lines)
	want := [][]string{{"hi"}, {"-bob"}, {"- bye", "bob"}}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) != len(want[i]) {
			t.Fatalf("chunk %d has %d lines, want %d", i, len(chunk), len(want[i]))
		}
		for j, line := range chunk {
			if line.Raw() != want[i][j] {
				t.Fatalf("chunk %d line %d = %q, want %q", i, j, line.Raw(), want[i][j])
			}
		}
	}
}

func TestSplitDialogChunksLeadingDialog(t *testing.T) {
	chunks := SplitDialogChunks([]subtitles.Line{subtitles.NewLine("- a"), subtitles.NewLine("b")})
	if len(chunks) != 1 || len(chunks[0]) != 2 {
		t.Fatalf("expected one chunk, got %v", chunks)
	}
	if SplitDialogChunks(nil) != nil {
		t.Fatal("expected no chunks for no lines")
	}
}

func TestSplitDialogChunksCoverage(t *testing.T) {
	inputs := [][]string{
		{"a", "b", "c"},
		{"- a", "- b", "- c"},
		{"a", "- b", "c", "- d", "e", "f"},
		{"<i>-a</i>", "b", "<i>- c</i>"},
	}
	for _, raw := range inputs {
		lines := make([]subtitles.Line, len(raw))
		for i, text := range raw {
			lines[i] = subtitles.NewLine(text)
		}
		var flattened []string
		for _, chunk := range SplitDialogChunks(lines) {
			if len(chunk) == 0 {
				t.Fatalf("empty chunk for %q", raw)
			}
			for i, line := range chunk {
				if i > 0 && line.IsDialog() {
					t.Fatalf("dialog line inside chunk for %q", raw)
				}
				flattened = append(flattened, line.Raw())
			}
		}
		if strings.Join(flattened, "\n") != strings.Join(raw, "\n") {
			t.Fatalf("chunks do not cover input %q: %q", raw, flattened)
		}
	}
}
