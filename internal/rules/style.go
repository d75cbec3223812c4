package rules

import "regexp"

var redundantTags = []*regexp.Regexp{
	regexp.MustCompile(`</?i>(\s*)</?i>`),
	regexp.MustCompile(`</?b>(\s*)</?b>`),
	regexp.MustCompile(`</?u>(\s*)</?u>`),
}

// CollapseEmptyTags removes adjacent tag pairs of the same kind, keeping any
// whitespace between them. This cleans up empty spans such as "<i></i>" and
// joins "</i> <i>" left behind by merges.
func CollapseEmptyTags(text string) string {
	for _, re := range redundantTags {
		text = re.ReplaceAllString(text, "$1")
	}
	return text
}
