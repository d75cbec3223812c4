package workflow

import (
	"errors"
	"fmt"
	"io"
	"time"

	"subclean/internal/pipeline"
)

// Request selects the files to clean and where the output goes. Output,
// Overwrite and Stdout are mutually exclusive; with none set the cleaned file
// is written next to the input using the configured suffix.
type Request struct {
	Files []string
	// Output is an explicit destination. Only valid with a single file.
	Output string
	// Overwrite replaces each input in place.
	Overwrite bool
	// Stdout receives the cleaned text instead of a file.
	Stdout io.Writer
}

// Validate checks that the request is internally consistent.
func (r Request) Validate() error {
	if len(r.Files) == 0 {
		return errors.New("no input files")
	}
	modes := 0
	if r.Output != "" {
		modes++
	}
	if r.Overwrite {
		modes++
	}
	if r.Stdout != nil {
		modes++
	}
	if modes > 1 {
		return errors.New("output, overwrite and stdout are mutually exclusive")
	}
	if r.Output != "" && len(r.Files) > 1 {
		return fmt.Errorf("output path requires a single input, got %d", len(r.Files))
	}
	return nil
}

// Result describes one file's run.
type Result struct {
	RunID     string
	Source    string
	Output    string
	Encoding  string
	Report    pipeline.Report
	Duration  time.Duration
	Err       error
	ErrorKind string

	text    string
	started time.Time
}

// Failed reports whether the file could not be cleaned.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Summary collects the results of a Run in request order.
type Summary struct {
	Results []Result
}

// Failed returns the number of failed files.
func (s Summary) Failed() int {
	failed := 0
	for _, result := range s.Results {
		if result.Failed() {
			failed++
		}
	}
	return failed
}

// Cleaned returns the number of files written successfully.
func (s Summary) Cleaned() int {
	return len(s.Results) - s.Failed()
}

// Err returns an error naming the failed file count, or nil.
func (s Summary) Err() error {
	failed := s.Failed()
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d files failed", failed, len(s.Results))
}
