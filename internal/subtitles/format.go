package subtitles

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Format reads and writes one subtitle container format.
type Format interface {
	Name() string
	Extensions() []string
	Parse(text string) (*Document, error)
	Serialize(doc *Document) string
}

var formats = []Format{SRT{}}

// FormatForPath selects the format registered for the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range formats {
		for _, candidate := range format.Extensions() {
			if candidate == ext {
				return format, nil
			}
		}
	}
	if ext == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filepath.Base(path))
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions(), ", "))
}

// SupportedExtensions lists every registered extension.
func SupportedExtensions() []string {
	var exts []string
	for _, format := range formats {
		exts = append(exts, format.Extensions()...)
	}
	sort.Strings(exts)
	return exts
}
