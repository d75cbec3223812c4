package rules

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPattern marks a caller-supplied blacklist pattern that does not
// compile.
var ErrInvalidPattern = errors.New("invalid blacklist pattern")

// builtinBlacklist matches advertisement, credit and release-tag lines. All
// entries are matched case-insensitively against raw text.
var builtinBlacklist = []string{
	`^[-_–*:.]+$`,
	`^\*|\*$`,
	`Addic7ed|Subscene|Podnapisi|Subtitles`,
	`Support us and become VIP member|remove all ads|Advertise your product or brand here|Hier könnte deine Werbung stehen`,
	`\b(rate this subtitle|Help other users to choose the best subtitles|Helfe anderen Usern die besten Untertitel auszuwählen)\b`,
	`Übersetzung:|Untertitel:`,
	`\b((sub(title)?s?|sync(e|')?d?|cleaned|corrected|rip(ped)?|improved|encod|resync|edit|caption|version|provided)(ed|ing)?\b\s((&|and|,)\s)?)+(by|for|at)\b`,
	`www\.|https?://|\.(org|link|com)`,
	`\[at\]`,
	`WEB[- ]?(DL|Rip)|HDTV|dTV`,
	`\bSDH\b|Season\s*\d+[\s-]+Episode\s*\d+|Episode\s+Title`,
	`greetings from roNy|missing words added by`,
	`300MBUNiTED|:{2,}|Free Online Movies|SharePirate\.Com|Sub Upload Date|\bSync:`,
	`\b(WARNER BROS|Media Access Group|WGBH)\b`,
	`\b(yts|yify)\b`,
}

var compiledBuiltins = mustCompileAll(builtinBlacklist)

// BuiltinPatterns returns a copy of the built-in blacklist sources.
func BuiltinPatterns() []string {
	return append([]string(nil), builtinBlacklist...)
}

// PatternSet is a compiled, read-only blacklist. One set is built per run and
// may be shared by concurrent documents.
type PatternSet struct {
	sources  []string
	patterns []*regexp.Regexp
}

// NewPatternSet compiles the built-in patterns plus extra. Blank extras are
// ignored. The built-in table is never modified.
func NewPatternSet(extra ...string) (*PatternSet, error) {
	set := &PatternSet{
		sources:  BuiltinPatterns(),
		patterns: append([]*regexp.Regexp(nil), compiledBuiltins...),
	}
	for _, source := range extra {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}
		re, err := compileInsensitive(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, source, err)
		}
		set.sources = append(set.sources, source)
		set.patterns = append(set.patterns, re)
	}
	return set, nil
}

// Match reports whether text matches any pattern in the set.
func (s *PatternSet) Match(text string) bool {
	if s == nil {
		return false
	}
	for _, re := range s.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the set.
func (s *PatternSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Sources returns the uncompiled patterns in match order.
func (s *PatternSet) Sources() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.sources...)
}

type patternsFile struct {
	Patterns []string `yaml:"patterns"`
}

// LoadPatternsFile reads extra blacklist patterns from a YAML document of the
// form `patterns: [...]`.
func LoadPatternsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns file: %w", err)
	}
	var file patternsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse patterns file %s: %w", path, err)
	}
	return file.Patterns, nil
}

func compileInsensitive(source string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + source)
}

func mustCompileAll(sources []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(sources))
	for i, source := range sources {
		re, err := compileInsensitive(source)
		if err != nil {
			panic(fmt.Sprintf("rules: builtin pattern %q: %v", source, err))
		}
		compiled[i] = re
	}
	return compiled
}
