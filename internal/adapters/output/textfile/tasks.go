package textfile

import (
	"context"
	"errors"
	"io/fs"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"
	"mro-manager/internal/mapper"

	"go.uber.org/zap"
)

var _ ports.TaskSource = (*TaskFile)(nil)

type TaskFile struct {
	path string
	log  *zap.Logger
}

func NewTaskFile(path string, log *zap.Logger) *TaskFile {
	if log == nil {
		panic("logger is nil")
	}
	return &TaskFile{
		path: path,
		log:  log,
	}
}

func (f *TaskFile) Path() string {
	return f.path
}

func (f *TaskFile) LoadTasks(ctx context.Context) ([]entities.TaskRecord, []error, error) {
	var records []entities.TaskRecord
	var warnings []error

	err := readLines(ctx, f.path, func(n int, line string) {
		rec, err := mapper.TaskRecord(line)
		if err != nil {
			warn := &exceptions.LoadFormatError{Source: f.path, Line: n, Record: line, Reason: err.Error()}
			f.log.Warn("tasks: invalid task format", zap.String("file", f.path), zap.Int("line", n), zap.Error(err))
			warnings = append(warnings, warn)
			return
		}
		records = append(records, rec)
	})
	if errors.Is(err, fs.ErrNotExist) {
		f.log.Warn("tasks: source missing", zap.String("file", f.path))
		return nil, warnings, err
	}
	if err != nil {
		f.log.Error("tasks: failed to load", zap.String("file", f.path), zap.Error(err))
		return nil, warnings, err
	}

	f.log.Info("tasks: loaded", zap.String("file", f.path), zap.Int("records", len(records)), zap.Int("skipped", len(warnings)))
	return records, warnings, nil
}

func (f *TaskFile) Save(records []entities.TaskRecord) error {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, mapper.FormatTaskRecord(rec))
	}
	if err := writeLines(f.path, lines); err != nil {
		f.log.Error("tasks: failed to save", zap.String("file", f.path), zap.Error(err))
		return err
	}
	return nil
}
