package ports

import (
	"context"

	"mro-manager/internal/core/domain/entities"
)

// Sources return skipped-record warnings alongside the records they could
// parse. The error return is reserved for failures that stop the load.

type TaskSource interface {
	LoadTasks(ctx context.Context) ([]entities.TaskRecord, []error, error)
}

type StockSource interface {
	LoadStock(ctx context.Context) ([]entities.Part, []error, error)
}
