package pipeline

import "time"

// StageReport records the document size around one stage.
type StageReport struct {
	Name           string
	SectionsBefore int
	SectionsAfter  int
	LinesBefore    int
	LinesAfter     int
	Duration       time.Duration
}

// SectionsRemoved returns how many sections the stage dropped.
func (s StageReport) SectionsRemoved() int {
	return s.SectionsBefore - s.SectionsAfter
}

// LinesRemoved returns how many lines the stage dropped or merged away.
func (s StageReport) LinesRemoved() int {
	return s.LinesBefore - s.LinesAfter
}

// Report lists per-stage effects in execution order.
type Report struct {
	Stages []StageReport
}

// Input returns the section and line counts the first stage received.
func (r Report) Input() (sections, lines int) {
	if len(r.Stages) == 0 {
		return 0, 0
	}
	return r.Stages[0].SectionsBefore, r.Stages[0].LinesBefore
}

// Output returns the section and line counts the last stage produced.
func (r Report) Output() (sections, lines int) {
	if len(r.Stages) == 0 {
		return 0, 0
	}
	last := r.Stages[len(r.Stages)-1]
	return last.SectionsAfter, last.LinesAfter
}

// Duration sums the time spent in every stage.
func (r Report) Duration() time.Duration {
	var total time.Duration
	for _, stage := range r.Stages {
		total += stage.Duration
	}
	return total
}
