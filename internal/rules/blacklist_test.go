package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPatternSetMatchesBoilerplate(t *testing.T) {
	set, err := NewPatternSet()
	if err != nil {
		t.Fatalf("NewPatternSet: %v", err)
	}
	positives := []string{
		"Subtitles by SomeUser",
		"Advertise your product or brand here",
		"contact www.OpenSubtitles.org today",
		`<font color="#ffff00">Provided by username</font>`,
		"[http://example.com]",
		"http://foo.network",
		"Visit https://another-example.com",
		"find more under subs.link",
		"twitter.com/username",
		"synced and corrected by someone",
		"---",
		"*whispers",
		"WEB-DL release",
		"Season 2 - Episode 5",
		"Downloaded from YTS",
	}
	for _, text := range positives {
		if !set.Match(text) {
			t.Errorf("expected %q to be blacklisted", text)
		}
	}
	negatives := []string{
		"Hello there.",
		"- Are you nervous?",
		"I edited it myself.",
		"It's 9:17 already.",
		"We'll eat at six.",
	}
	for _, text := range negatives {
		if set.Match(text) {
			t.Errorf("expected %q to be kept", text)
		}
	}
}

func TestPatternSetCustomPatternIsScopedToSet(t *testing.T) {
	custom, err := NewPatternSet("forbidden phrase", "  ")
	if err != nil {
		t.Fatalf("NewPatternSet: %v", err)
	}
	if !custom.Match("A FORBIDDEN PHRASE appears") {
		t.Fatal("expected custom pattern to match case-insensitively")
	}
	if custom.Len() != len(BuiltinPatterns())+1 {
		t.Fatalf("expected blank extras to be ignored, got %d patterns", custom.Len())
	}

	plain, err := NewPatternSet()
	if err != nil {
		t.Fatalf("NewPatternSet: %v", err)
	}
	if plain.Match("A forbidden phrase appears") {
		t.Fatal("custom pattern leaked into another set")
	}
	if plain.Len() != len(BuiltinPatterns()) {
		t.Fatalf("builtin table changed: %d patterns", plain.Len())
	}
}

func TestPatternSetRejectsInvalidPattern(t *testing.T) {
	_, err := NewPatternSet("(unclosed")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestNilPatternSet(t *testing.T) {
	var set *PatternSet
	if set.Match("anything") || set.Len() != 0 || set.Sources() != nil {
		t.Fatal("expected nil set to match nothing")
	}
}

func TestLoadPatternsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := "patterns:\n  - \"brought to you by\"\n  - '\\bfansub\\b'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	patterns, err := LoadPatternsFile(path)
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}
	if len(patterns) != 2 || patterns[0] != "brought to you by" || patterns[1] != `\bfansub\b` {
		t.Fatalf("unexpected patterns: %#v", patterns)
	}
	set, err := NewPatternSet(patterns...)
	if err != nil {
		t.Fatalf("NewPatternSet: %v", err)
	}
	if !set.Match("a Fansub release") {
		t.Fatal("expected file pattern to match")
	}
}

func TestLoadPatternsFileMissing(t *testing.T) {
	if _, err := LoadPatternsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
