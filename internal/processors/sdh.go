package processors

import (
	"subclean/internal/rules"
	"subclean/internal/subtitles"
)

// SDH removes hearing-impaired annotations. Whole-line annotations are
// dropped before any partial cleanup is attempted; lines that cleanup leaves
// without visible text are dropped too.
type SDH struct{}

func (SDH) Name() string { return "SDH" }

func (SDH) Process(doc *subtitles.Document) *subtitles.Document {
	for _, section := range doc.Sections {
		kept := section.Lines[:0]
		for _, line := range section.Lines {
			text := line.Raw()
			if rules.ShouldDropSDH(text) {
				continue
			}
			if rules.ContainsAnnotation(text) {
				line = line.Map(rules.CleanAnnotations)
				if line.VisibleLength() == 0 {
					continue
				}
			}
			kept = append(kept, line)
		}
		section.Lines = kept
	}
	doc.RemoveEmptySections()
	return doc
}
