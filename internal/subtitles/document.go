package subtitles

// Document is an ordered list of caption sections in source order. Stages
// filter and rewrite sections in place; they never reorder them.
type Document struct {
	Sections []*Section
}

// NewDocument creates a document holding sections.
func NewDocument(sections ...*Section) *Document {
	return &Document{Sections: append([]*Section(nil), sections...)}
}

// AddSection appends a section.
func (d *Document) AddSection(section *Section) {
	d.Sections = append(d.Sections, section)
}

// RemoveEmptySections drops every section without visible text and returns
// how many were dropped.
func (d *Document) RemoveEmptySections() int {
	kept := d.Sections[:0]
	for _, section := range d.Sections {
		if !section.IsEmpty() {
			kept = append(kept, section)
		}
	}
	removed := len(d.Sections) - len(kept)
	for i := len(kept); i < len(d.Sections); i++ {
		d.Sections[i] = nil
	}
	d.Sections = kept
	return removed
}

// SectionCount returns the number of sections.
func (d *Document) SectionCount() int {
	if d == nil {
		return 0
	}
	return len(d.Sections)
}

// LineCount returns the number of lines across all sections.
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, section := range d.Sections {
		total += section.Len()
	}
	return total
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := &Document{Sections: make([]*Section, len(d.Sections))}
	for i, section := range d.Sections {
		clone.Sections[i] = section.Clone()
	}
	return clone
}
