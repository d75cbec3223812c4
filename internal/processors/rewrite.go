package processors

import (
	"subclean/internal/rules"
	"subclean/internal/subtitles"
)

// Dialog rewrites leading dash runs to a single "- ".
type Dialog struct{}

func (Dialog) Name() string { return "Dialog" }

func (Dialog) Process(doc *subtitles.Document) *subtitles.Document {
	return rewriteLines(doc, rules.NormalizeDialogDash)
}

// ErrorFix applies rules.FixErrors to every line.
type ErrorFix struct{}

func (ErrorFix) Name() string { return "ErrorFix" }

func (ErrorFix) Process(doc *subtitles.Document) *subtitles.Document {
	return rewriteLines(doc, rules.FixErrors)
}

// Style collapses redundant tag pairs. It runs last so it sees the spans the
// other stages emptied.
type Style struct{}

func (Style) Name() string { return "Style" }

func (Style) Process(doc *subtitles.Document) *subtitles.Document {
	return rewriteLines(doc, rules.CollapseEmptyTags)
}
