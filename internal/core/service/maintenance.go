package service

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	reportIDPrefix = "RPT-"
	reportIDStart  = 1000
	dateLayout     = "2006-01-02"
)

var _ ports.MaintenanceUseCases = (*MaintenanceService)(nil)

type MaintenanceService struct {
	tasks     ports.TaskRepository
	inventory ports.InventoryRepository
	reports   ports.ReportLog
	now       func() time.Time
	newID     func() string
	log       *zap.Logger

	mu        sync.Mutex
	active    *Session
	aircraft  string
	reportSeq int
}

func NewMaintenanceService(
	tasks ports.TaskRepository,
	inventory ports.InventoryRepository,
	reports ports.ReportLog,
	log *zap.Logger,
) (*MaintenanceService, error) {
	if tasks == nil {
		return nil, errors.New("task repository is nil")
	}
	if inventory == nil {
		return nil, errors.New("inventory repository is nil")
	}
	if reports == nil {
		return nil, errors.New("report log is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	return &MaintenanceService{
		tasks:     tasks,
		inventory: inventory,
		reports:   reports,
		now:       time.Now,
		newID:     uuid.NewString,
		log:       log,
		reportSeq: reportIDStart,
	}, nil
}

func (s *MaintenanceService) Systems() []string {
	return s.tasks.Systems()
}

func (s *MaintenanceService) Tasks() []*entities.Task {
	return s.tasks.All()
}

func (s *MaintenanceService) CandidateTasks(problem entities.Problem) ([]*entities.Task, error) {
	s.log.Debug("usecase: candidate tasks", zap.String("problem_id", problem.ID), zap.String("system", problem.System))
	tasks := s.tasks.TasksFor(problem.System)
	if len(tasks) == 0 {
		s.log.Warn("usecase: candidate tasks failed", zap.String("system", problem.System), zap.Error(exceptions.ErrTaskNotFound))
		return nil, fmt.Errorf("system %q: %w", problem.System, exceptions.ErrTaskNotFound)
	}
	s.log.Debug("usecase: candidate tasks done", zap.Int("tasks", len(tasks)))
	return tasks, nil
}

func (s *MaintenanceService) FindTask(system, name string) (*entities.Task, error) {
	task, err := s.tasks.FindByName(system, name)
	if err != nil {
		s.log.Warn("usecase: find task failed", zap.String("system", system), zap.String("task", name), zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (s *MaintenanceService) CheckParts(task *entities.Task) []exceptions.Shortage {
	return s.inventory.Check(task.RequiredParts())
}

// Restock adds qty units of name. Only positive quantities are accepted so
// stock never drops through a restock.
func (s *MaintenanceService) Restock(name string, qty int) error {
	if qty <= 0 {
		s.log.Warn("usecase: restock failed", zap.String("part", name), zap.Int("quantity", qty), zap.Error(exceptions.ErrInvalidQuantity))
		return fmt.Errorf("restock %s by %d: %w", name, qty, exceptions.ErrInvalidQuantity)
	}
	s.log.Info("usecase: restock", zap.String("part", name), zap.Int("quantity", qty))
	s.inventory.AddPart(name, qty)
	return nil
}

func (s *MaintenanceService) Stock() []entities.Part {
	return s.inventory.Snapshot()
}

// SetAircraft sets the label written on subsequent reports. Empty clears it.
func (s *MaintenanceService) SetAircraft(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aircraft = label
}

func (s *MaintenanceService) Aircraft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aircraft
}

func (s *MaintenanceService) Begin(system, taskName string) (ports.MaintenanceSession, error) {
	task, err := s.FindTask(system, taskName)
	if err != nil {
		return nil, err
	}
	return s.BeginTask(task)
}

func (s *MaintenanceService) BeginTask(task *entities.Task) (ports.MaintenanceSession, error) {
	if task == nil {
		return nil, fmt.Errorf("begin: %w", exceptions.ErrTaskNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.log.Warn("usecase: begin session failed", zap.String("active_session", s.active.id), zap.Error(exceptions.ErrSessionActive))
		return nil, exceptions.ErrSessionActive
	}

	session := &Session{
		id:    s.newID(),
		task:  task,
		gate:  entities.NewStepGate(task.StepCount()),
		state: sessionOpen,
		svc:   s,
	}
	s.active = session
	s.log.Info("usecase: begin session",
		zap.String("session_id", session.id),
		zap.String("task_id", task.ID()),
		zap.String("task", task.Name()),
		zap.Int("steps", task.StepCount()),
	)
	return session, nil
}

// release clears the active slot if it still belongs to session.
func (s *MaintenanceService) release(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == session {
		s.active = nil
	}
}

func (s *MaintenanceService) newReportCard(session *Session) *entities.ReportCard {
	s.mu.Lock()
	s.reportSeq++
	id := reportIDPrefix + strconv.Itoa(s.reportSeq)
	aircraft := s.aircraft
	s.mu.Unlock()

	task := session.task
	return entities.NewReportCard(
		id,
		s.now().Format(dateLayout),
		aircraft,
		task.System(),
		session.id,
		[]string{task.Name()},
		task.RequiredParts(),
	)
}
