package exceptions

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrStepOutOfOrder = errors.New("step acknowledged out of order")
	ErrStepOutOfRange = errors.New("step index out of range")
	ErrGateComplete   = errors.New("all steps already acknowledged")
	ErrGateIncomplete = errors.New("task steps are not completed yet")
	ErrSessionActive  = errors.New("a maintenance session is already active")
	ErrSessionClosed  = errors.New("maintenance session is closed")
)
