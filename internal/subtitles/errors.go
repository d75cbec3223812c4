package subtitles

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat marks files whose extension has no registered format.
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")
	// ErrMalformedBlock marks caption text that has no timing line to attach to.
	ErrMalformedBlock = errors.New("malformed subtitle block")
)

// ParseError locates a parse failure in the source text.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies the failure for run history.
func (e *ParseError) ErrorKind() string {
	return "malformed_block"
}
