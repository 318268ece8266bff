package entities

import (
	"fmt"

	"mro-manager/internal/core/domain/exceptions"
)

type StepState string

const (
	StepLocked   StepState = "locked"
	StepUnlocked StepState = "unlocked"
	StepDone     StepState = "done"
)

// GateStatus is a read-only view of a StepGate after a transition.
type GateStatus struct {
	Front        int
	Acknowledged int
	Total        int
	Done         bool
}

// StepGate enforces strict in-order acknowledgment of a task's steps.
// Exactly one step is unlocked at a time; acknowledging it unlocks the next.
// Rejected acknowledgments leave the gate untouched.
type StepGate struct {
	total int
	front int
}

func NewStepGate(steps int) *StepGate {
	if steps < 0 {
		steps = 0
	}
	return &StepGate{total: steps}
}

func (g *StepGate) Len() int {
	return g.total
}

// Front returns the index awaiting acknowledgment, or Len() once done.
func (g *StepGate) Front() int {
	return g.front
}

func (g *StepGate) Done() bool {
	return g.front >= g.total
}

func (g *StepGate) State(i int) StepState {
	switch {
	case i < 0 || i >= g.total:
		return StepLocked
	case i < g.front:
		return StepDone
	case i == g.front:
		return StepUnlocked
	default:
		return StepLocked
	}
}

// Acknowledged returns the acknowledged step indices in order.
func (g *StepGate) Acknowledged() []int {
	out := make([]int, 0, g.front)
	for i := 0; i < g.front; i++ {
		out = append(out, i)
	}
	return out
}

func (g *StepGate) Status() GateStatus {
	return GateStatus{
		Front:        g.front,
		Acknowledged: g.front,
		Total:        g.total,
		Done:         g.Done(),
	}
}

func (g *StepGate) Acknowledge(i int) (GateStatus, error) {
	if g.Done() {
		return g.Status(), exceptions.ErrGateComplete
	}
	if i < 0 || i >= g.total {
		return g.Status(), fmt.Errorf("step %d of %d: %w", i+1, g.total, exceptions.ErrStepOutOfRange)
	}
	if i != g.front {
		return g.Status(), fmt.Errorf("step %d while awaiting step %d: %w", i+1, g.front+1, exceptions.ErrStepOutOfOrder)
	}
	g.front++
	return g.Status(), nil
}
