package exceptions

import (
	"errors"
	"fmt"
)

var ErrSinkWrite = errors.New("report log write failed")

// SinkWriteError is non-fatal: the maintenance action it belongs to still
// counts as performed.
type SinkWriteError struct {
	Path string
	Err  error
}

func (e *SinkWriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %v", ErrSinkWrite.Error(), e.Path, e.Err)
}

func (e *SinkWriteError) Unwrap() []error { return []error{ErrSinkWrite, e.Err} }
