package processors

import (
	"sync"

	"subclean/internal/rules"
	"subclean/internal/subtitles"
)

var builtinPatterns = sync.OnceValue(func() *rules.PatternSet {
	set, err := rules.NewPatternSet()
	if err != nil {
		panic(err)
	}
	return set
})

// Blacklist drops lines matching the pattern set, then drops sections left
// empty.
type Blacklist struct {
	// Patterns defaults to the built-in table when nil.
	Patterns *rules.PatternSet
}

func (Blacklist) Name() string { return "Blacklist" }

func (b Blacklist) Process(doc *subtitles.Document) *subtitles.Document {
	patterns := b.Patterns
	if patterns == nil {
		patterns = builtinPatterns()
	}
	for _, section := range doc.Sections {
		kept := section.Lines[:0]
		for _, line := range section.Lines {
			if !patterns.Match(line.Raw()) {
				kept = append(kept, line)
			}
		}
		section.Lines = kept
	}
	doc.RemoveEmptySections()
	return doc
}
