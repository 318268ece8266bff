package ports

import (
	"context"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
)

type InventoryRepository interface {
	AddPart(name string, qty int)
	SetPart(name string, qty int)
	IsAvailable(name string, qty int) bool
	Quantity(name string) (int, bool)
	// Check reports every shortage for the given demand without mutating stock.
	Check(names []string) []exceptions.Shortage
	// Deduct removes one unit per occurrence in names, or nothing at all.
	Deduct(names []string) error
	Snapshot() []entities.Part
}

type TaskRepository interface {
	Load(records []entities.TaskRecord)
	TasksFor(system string) []*entities.Task
	FindByName(system, name string) (*entities.Task, error)
	Systems() []string
	All() []*entities.Task
}

type ReportLog interface {
	Append(ctx context.Context, card *entities.ReportCard) error
}
