package entities

// TaskRecord is one parsed line of the task source.
type TaskRecord struct {
	System string
	Name   string
	Steps  []string
	Parts  []string
}

type Task struct {
	id            string
	name          string
	system        string
	steps         []string
	requiredParts []string
}

func NewTask(id, name, system string, steps, requiredParts []string) *Task {
	return &Task{
		id:            id,
		name:          name,
		system:        system,
		steps:         copyStrings(steps),
		requiredParts: copyStrings(requiredParts),
	}
}

func (t *Task) ID() string {
	return t.id
}

func (t *Task) Name() string {
	return t.name
}

func (t *Task) System() string {
	return t.system
}

func (t *Task) Steps() []string {
	return copyStrings(t.steps)
}

func (t *Task) StepCount() int {
	return len(t.steps)
}

func (t *Task) RequiredParts() []string {
	return copyStrings(t.requiredParts)
}

// Record returns the task in source form, e.g. for re-serialisation.
func (t *Task) Record() TaskRecord {
	return TaskRecord{
		System: t.system,
		Name:   t.name,
		Steps:  t.Steps(),
		Parts:  t.RequiredParts(),
	}
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}
