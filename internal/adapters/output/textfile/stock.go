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

var _ ports.StockSource = (*StockFile)(nil)

type StockFile struct {
	path string
	log  *zap.Logger
}

func NewStockFile(path string, log *zap.Logger) *StockFile {
	if log == nil {
		panic("logger is nil")
	}
	return &StockFile{
		path: path,
		log:  log,
	}
}

func (f *StockFile) Path() string {
	return f.path
}

func (f *StockFile) LoadStock(ctx context.Context) ([]entities.Part, []error, error) {
	var parts []entities.Part
	var warnings []error

	err := readLines(ctx, f.path, func(n int, line string) {
		part, err := mapper.StockLine(line)
		if err != nil {
			warn := &exceptions.LoadFormatError{Source: f.path, Line: n, Record: line, Reason: err.Error()}
			f.log.Warn("stock: invalid stock line", zap.String("file", f.path), zap.Int("line", n), zap.Error(err))
			warnings = append(warnings, warn)
			return
		}
		parts = append(parts, part)
	})
	if errors.Is(err, fs.ErrNotExist) {
		f.log.Warn("stock: source missing", zap.String("file", f.path))
		return nil, warnings, err
	}
	if err != nil {
		f.log.Error("stock: failed to load", zap.String("file", f.path), zap.Error(err))
		return nil, warnings, err
	}

	f.log.Info("stock: loaded", zap.String("file", f.path), zap.Int("parts", len(parts)), zap.Int("skipped", len(warnings)))
	return parts, warnings, nil
}

func (f *StockFile) Save(parts []entities.Part) error {
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, mapper.FormatStockLine(p))
	}
	if err := writeLines(f.path, lines); err != nil {
		f.log.Error("stock: failed to save", zap.String("file", f.path), zap.Error(err))
		return err
	}
	return nil
}
