package memory

import (
	"fmt"
	"sync"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.TaskRepository = (*TaskCatalog)(nil)

// TaskCatalog indexes tasks by system. Tasks are read-only once loaded.
type TaskCatalog struct {
	mu       sync.RWMutex
	bySystem map[string][]*entities.Task
	systems  []string
	all      []*entities.Task
	log      *zap.Logger
}

func NewTaskCatalog(log *zap.Logger) *TaskCatalog {
	if log == nil {
		panic("logger is nil")
	}
	return &TaskCatalog{
		bySystem: make(map[string][]*entities.Task),
		log:      log,
	}
}

// Load appends every record in order; tasks sharing a system are all kept.
// IDs continue from the number of tasks already loaded.
func (c *TaskCatalog) Load(records []entities.TaskRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range records {
		id := fmt.Sprintf("T%03d", len(c.all)+1)
		task := entities.NewTask(id, rec.Name, rec.System, rec.Steps, rec.Parts)
		if _, ok := c.bySystem[rec.System]; !ok {
			c.systems = append(c.systems, rec.System)
		}
		c.bySystem[rec.System] = append(c.bySystem[rec.System], task)
		c.all = append(c.all, task)
	}
	c.log.Debug("catalog: loaded", zap.Int("records", len(records)), zap.Int("tasks", len(c.all)))
}

func (c *TaskCatalog) TasksFor(system string) []*entities.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tasks := c.bySystem[system]
	return append(make([]*entities.Task, 0, len(tasks)), tasks...)
}

func (c *TaskCatalog) FindByName(system, name string) (*entities.Task, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, task := range c.bySystem[system] {
		if task.Name() == name {
			return task, nil
		}
	}
	return nil, fmt.Errorf("%s/%s: %w", system, name, exceptions.ErrTaskNotFound)
}

func (c *TaskCatalog) Systems() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.systems...)
}

func (c *TaskCatalog) All() []*entities.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append(make([]*entities.Task, 0, len(c.all)), c.all...)
}
