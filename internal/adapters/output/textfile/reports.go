package textfile

import (
	"context"
	"os"
	"sync"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"
	"mro-manager/internal/mapper"

	"go.uber.org/zap"
)

var _ ports.ReportLog = (*ReportLog)(nil)

// ReportLog appends report blocks to a text file. The file is opened per
// append so an external rotation or deletion is picked up.
type ReportLog struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewReportLog(path string, log *zap.Logger) *ReportLog {
	if log == nil {
		panic("logger is nil")
	}
	return &ReportLog{
		path: path,
		log:  log,
	}
}

func (r *ReportLog) Path() string {
	return r.path
}

func (r *ReportLog) Append(ctx context.Context, card *entities.ReportCard) error {
	if err := ctx.Err(); err != nil {
		return &exceptions.SinkWriteError{Path: r.path, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.log.Warn("reports: could not open report file", zap.String("file", r.path), zap.Error(err))
		return &exceptions.SinkWriteError{Path: r.path, Err: err}
	}

	if _, err := f.WriteString(mapper.ReportBlock(card)); err != nil {
		_ = f.Close()
		r.log.Warn("reports: could not write report", zap.String("file", r.path), zap.String("report_id", card.ID()), zap.Error(err))
		return &exceptions.SinkWriteError{Path: r.path, Err: err}
	}
	if err := f.Close(); err != nil {
		r.log.Warn("reports: could not close report file", zap.String("file", r.path), zap.Error(err))
		return &exceptions.SinkWriteError{Path: r.path, Err: err}
	}

	r.log.Info("reports: appended", zap.String("file", r.path), zap.String("report_id", card.ID()))
	return nil
}
