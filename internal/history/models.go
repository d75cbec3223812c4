package history

import (
	"time"
)

// Status is the outcome of a run.
type Status string

const (
	// StatusCleaned marks a file that was cleaned and written.
	StatusCleaned Status = "cleaned"
	// StatusFailed marks a file that could not be cleaned.
	StatusFailed Status = "failed"
)

// Run is one file's pass through the pipeline.
type Run struct {
	ID           string
	SourcePath   string
	OutputPath   string
	Encoding     string
	Status       Status
	ErrorKind    string
	ErrorMessage string
	SectionsIn   int
	SectionsOut  int
	LinesIn      int
	LinesOut     int
	Stages       []string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Duration returns how long the run took.
func (r Run) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Failed reports whether the run ended in failure.
func (r Run) Failed() bool {
	return r.Status == StatusFailed
}
