package exceptions

import (
	"errors"
	"fmt"
)

var ErrLoadFormat = errors.New("malformed record")

// LoadFormatError reports a source line that was skipped during load.
type LoadFormatError struct {
	Source string
	Line   int
	Record string
	Reason string
}

func (e *LoadFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d: %s: %s (%q)", e.Source, e.Line, ErrLoadFormat.Error(), e.Reason, e.Record)
}

func (e *LoadFormatError) Unwrap() error { return ErrLoadFormat }
