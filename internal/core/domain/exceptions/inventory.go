package exceptions

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPartUnavailable = errors.New("part unavailable")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Shortage describes one part that cannot cover its demand.
type Shortage struct {
	Part    string
	Need    int
	Have    int
	Missing bool
}

func (s Shortage) String() string {
	if s.Missing {
		return fmt.Sprintf("%s: not in stock", s.Part)
	}
	return fmt.Sprintf("%s: need %d, have %d", s.Part, s.Need, s.Have)
}

// PartUnavailableError is returned by a failed deduction. It lists every
// shortage found during the pre-check, not only the first one.
type PartUnavailableError struct {
	Shortages []Shortage
}

func (e *PartUnavailableError) Error() string {
	if e == nil || len(e.Shortages) == 0 {
		return ErrPartUnavailable.Error()
	}
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, s.String())
	}
	return fmt.Sprintf("%s: %s", ErrPartUnavailable.Error(), strings.Join(parts, "; "))
}

func (e *PartUnavailableError) Unwrap() error { return ErrPartUnavailable }
