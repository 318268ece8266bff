package service

import (
	"context"
	"sync"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"

	"go.uber.org/zap"
)

type sessionState int

const (
	sessionOpen sessionState = iota
	sessionCompleted
	sessionCancelled
	sessionAborted
)

var _ ports.MaintenanceSession = (*Session)(nil)

// Session is one task execution. Its step gate must reach the terminal state
// before Finish deducts parts and writes the report.
type Session struct {
	mu    sync.Mutex
	id    string
	task  *entities.Task
	gate  *entities.StepGate
	state sessionState
	svc   *MaintenanceService
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Task() *entities.Task {
	return s.task
}

func (s *Session) Status() entities.GateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Status()
}

func (s *Session) StepState(i int) entities.StepState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.State(i)
}

func (s *Session) Acknowledge(i int) (entities.GateStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != sessionOpen {
		return s.gate.Status(), exceptions.ErrSessionClosed
	}
	status, err := s.gate.Acknowledge(i)
	if err != nil {
		s.svc.log.Debug("usecase: acknowledge rejected", zap.String("session_id", s.id), zap.Int("step", i), zap.Error(err))
		return status, err
	}
	s.svc.log.Debug("usecase: acknowledge", zap.String("session_id", s.id), zap.Int("step", i), zap.Bool("done", status.Done))
	return status, nil
}

func (s *Session) CanFinish() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == sessionOpen && s.gate.Done()
}

// Cancel discards the session. Nothing has been deducted or written yet, so
// there is nothing to undo.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != sessionOpen {
		return
	}
	s.state = sessionCancelled
	s.svc.release(s)
	s.svc.log.Info("usecase: session cancelled", zap.String("session_id", s.id), zap.Int("acknowledged", s.gate.Front()))
}

// Finish deducts the task's parts and appends a report. A shortage ends the
// session with no report and untouched stock. A report log failure is
// returned as *exceptions.SinkWriteError together with the card: the work is
// done and the card is still valid.
func (s *Session) Finish(ctx context.Context) (*entities.ReportCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.svc.log.With(zap.String("session_id", s.id), zap.String("task_id", s.task.ID()))

	if s.state != sessionOpen {
		return nil, exceptions.ErrSessionClosed
	}
	if !s.gate.Done() {
		log.Warn("usecase: finish rejected", zap.Int("acknowledged", s.gate.Front()), zap.Int("steps", s.gate.Len()), zap.Error(exceptions.ErrGateIncomplete))
		return nil, exceptions.ErrGateIncomplete
	}

	if err := s.svc.inventory.Deduct(s.task.RequiredParts()); err != nil {
		s.state = sessionAborted
		s.svc.release(s)
		log.Warn("usecase: finish failed", zap.Error(err))
		return nil, err
	}

	card := s.svc.newReportCard(s)
	s.state = sessionCompleted
	s.svc.release(s)

	if err := s.svc.reports.Append(ctx, card); err != nil {
		log.Warn("usecase: report log append failed", zap.String("report_id", card.ID()), zap.Error(err))
		return card, err
	}

	log.Info("usecase: finish done", zap.String("report_id", card.ID()), zap.Strings("used_parts", card.UsedParts()))
	return card, nil
}
