package ports

import (
	"context"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
)

type MaintenanceUseCases interface {
	Systems() []string
	Tasks() []*entities.Task
	CandidateTasks(problem entities.Problem) ([]*entities.Task, error)
	FindTask(system, name string) (*entities.Task, error)
	CheckParts(task *entities.Task) []exceptions.Shortage
	Restock(name string, qty int) error
	Stock() []entities.Part
	SetAircraft(label string)
	Aircraft() string
	Begin(system, taskName string) (MaintenanceSession, error)
	BeginTask(task *entities.Task) (MaintenanceSession, error)
}

// MaintenanceSession drives one task execution. Nothing reaches the
// inventory or the report log before Finish.
type MaintenanceSession interface {
	ID() string
	Task() *entities.Task
	Status() entities.GateStatus
	StepState(i int) entities.StepState
	Acknowledge(i int) (entities.GateStatus, error)
	CanFinish() bool
	Finish(ctx context.Context) (*entities.ReportCard, error)
	Cancel()
}
