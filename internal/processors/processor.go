package processors

import (
	"errors"
	"fmt"
	"strings"

	"subclean/internal/rules"
	"subclean/internal/subtitles"
)

// DefaultLineLength is the visible-length threshold below which LineLength
// merges a wrapped caption.
const DefaultLineLength = 50

// ErrUnknownProcessor marks a stage name the registry does not know.
var ErrUnknownProcessor = errors.New("unknown processor")

// Processor transforms a document. Implementations may modify doc in place
// and return it.
type Processor interface {
	Name() string
	Process(doc *subtitles.Document) *subtitles.Document
}

// Options configures the stages built by a Registry.
type Options struct {
	// Patterns is the blacklist. Nil means the built-in table only.
	Patterns *rules.PatternSet
	// LineLength is the merge threshold. Zero or less means DefaultLineLength.
	LineLength int
}

// Info describes a registered stage.
type Info struct {
	Name        string
	Aliases     []string
	Description string
}

type definition struct {
	info  Info
	build func(Options) Processor
}

var catalog = []definition{
	{
		info: Info{Name: "Blacklist", Description: "Drop advertisement, credit and release-tag lines"},
		build: func(opts Options) Processor {
			return Blacklist{Patterns: opts.Patterns}
		},
	},
	{
		info:  Info{Name: "SDH", Description: "Remove hearing-impaired annotations and speaker labels"},
		build: func(Options) Processor { return SDH{} },
	},
	{
		info:  Info{Name: "Dialog", Description: `Normalize leading dialog dashes to "- "`},
		build: func(Options) Processor { return Dialog{} },
	},
	{
		info:  Info{Name: "ErrorFix", Aliases: []string{"Error"}, Description: "Fix entities, spacing and punctuation"},
		build: func(Options) Processor { return ErrorFix{} },
	},
	{
		info: Info{Name: "LineLength", Description: "Merge short wrapped lines within a speaker turn"},
		build: func(opts Options) Processor {
			return LineLength{Threshold: opts.LineLength}
		},
	},
	{
		info:  Info{Name: "Style", Description: "Collapse empty or redundant style tags"},
		build: func(Options) Processor { return Style{} },
	},
}

// Catalog lists every registered stage in default order.
func Catalog() []Info {
	infos := make([]Info, len(catalog))
	for i, def := range catalog {
		infos[i] = def.info
		infos[i].Aliases = append([]string(nil), def.info.Aliases...)
	}
	return infos
}

// DefaultNames returns the canonical stage names in default order.
func DefaultNames() []string {
	names := make([]string, len(catalog))
	for i, def := range catalog {
		names[i] = def.info.Name
	}
	return names
}

// Canonical resolves a case-insensitive name or alias to its canonical form.
func Canonical(name string) (string, error) {
	def, err := lookup(name)
	if err != nil {
		return "", err
	}
	return def.info.Name, nil
}

func lookup(name string) (definition, error) {
	trimmed := strings.TrimSpace(name)
	for _, def := range catalog {
		if strings.EqualFold(def.info.Name, trimmed) {
			return def, nil
		}
		for _, alias := range def.info.Aliases {
			if strings.EqualFold(alias, trimmed) {
				return def, nil
			}
		}
	}
	return definition{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownProcessor, name, strings.Join(DefaultNames(), ", "))
}

// Registry builds configured stage instances by name.
type Registry struct {
	opts Options
}

// NewRegistry returns a registry whose stages share opts.
func NewRegistry(opts Options) *Registry {
	return &Registry{opts: opts}
}

// Resolve builds the named stages in the order given. An empty list selects
// the default order. Any unknown name fails the whole call.
func (r *Registry) Resolve(names ...string) ([]Processor, error) {
	if len(names) == 0 {
		names = DefaultNames()
	}
	stages := make([]Processor, 0, len(names))
	for _, name := range names {
		def, err := lookup(name)
		if err != nil {
			return nil, err
		}
		stages = append(stages, def.build(r.opts))
	}
	return stages, nil
}

// rewriteLines replaces every line with fn applied to its raw text.
func rewriteLines(doc *subtitles.Document, fn func(string) string) *subtitles.Document {
	for _, section := range doc.Sections {
		for i, line := range section.Lines {
			section.Lines[i] = line.Map(fn)
		}
	}
	return doc
}
