package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mro-manager/internal/config"
	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"
	"mro-manager/internal/mapper"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type screen int

const (
	screenAircraft screen = iota
	screenSystem
	screenTask
	screenSteps
	screenResult
)

// finishedMsg carries the outcome of Session.Finish back into Update.
type finishedMsg struct {
	card *entities.ReportCard
	err  error
}

// Model is the checklist program: aircraft, system, task, then the ordered
// steps of one session. Only the front step can be checked and finish stays
// disabled until every step is done.
type Model struct {
	ctx      context.Context
	svc      ports.MaintenanceUseCases
	settings *config.Settings
	log      *zap.Logger
	keys     keyMap
	help     help.Model

	screen  screen
	cursor  int
	system  string
	tasks   []*entities.Task
	session ports.MaintenanceSession
	card    *entities.ReportCard
	status  string
	failed  bool
	notices []string
	// finishing is set while a Finish command is in flight.
	finishing bool
	// reports holds every card produced in this run, oldest first.
	reports []*entities.ReportCard
}

// New builds the model. Notices are shown above the first screen, e.g. load
// warnings.
func New(ctx context.Context, svc ports.MaintenanceUseCases, settings *config.Settings, notices []string, log *zap.Logger) Model {
	if log == nil {
		panic("logger is nil")
	}
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return Model{
		ctx:      ctx,
		svc:      svc,
		settings: settings,
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
		notices:  notices,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case finishedMsg:
		return m.finished(msg), nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.session != nil {
				m.session.Cancel()
				m.session = nil
			}
			return m, tea.Quit
		}
		switch m.screen {
		case screenAircraft:
			return m.updateAircraft(msg), nil
		case screenSystem:
			return m.updateSystem(msg), nil
		case screenTask:
			return m.updateTask(msg), nil
		case screenSteps:
			return m.updateSteps(msg)
		case screenResult:
			return m.updateResult(msg), nil
		}
	}
	return m, nil
}

func (m Model) moveCursor(msg tea.KeyMsg, n int) (Model, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, true
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
		return m, true
	}
	return m, false
}

func (m Model) updateAircraft(msg tea.KeyMsg) Model {
	if next, moved := m.moveCursor(msg, len(m.settings.Aircraft)); moved {
		return next
	}
	if key.Matches(msg, m.keys.Select) && len(m.settings.Aircraft) > 0 {
		m.svc.SetAircraft(m.settings.Aircraft[m.cursor])
		m.notices = nil
		m.status = ""
		m.screen = screenSystem
		m.cursor = 0
	}
	return m
}

func (m Model) updateSystem(msg tea.KeyMsg) Model {
	if next, moved := m.moveCursor(msg, len(m.settings.Systems)); moved {
		return next
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenAircraft
		m.cursor = 0
		m.status = ""
	case key.Matches(msg, m.keys.Select) && len(m.settings.Systems) > 0:
		system := m.settings.Systems[m.cursor]
		tasks, err := m.svc.CandidateTasks(entities.NewProblem("", system, ""))
		if err != nil {
			m.status = mapper.Message(err)
			return m
		}
		m.system = system
		m.tasks = tasks
		m.screen = screenTask
		m.cursor = 0
		m.status = ""
	}
	return m
}

func (m Model) updateTask(msg tea.KeyMsg) Model {
	if next, moved := m.moveCursor(msg, len(m.tasks)); moved {
		return next
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenSystem
		m.cursor = 0
		m.status = ""
	case key.Matches(msg, m.keys.Select) && len(m.tasks) > 0:
		task := m.tasks[m.cursor]
		session, err := m.svc.BeginTask(task)
		if err != nil {
			m.status = mapper.Message(err)
			return m
		}
		m.session = session
		m.screen = screenSteps
		m.cursor = 0
		m.status = ""
		if shortages := m.svc.CheckParts(task); len(shortages) > 0 {
			parts := make([]string, 0, len(shortages))
			for _, s := range shortages {
				parts = append(parts, s.String())
			}
			m.status = "Need to order: " + strings.Join(parts, "; ")
		}
	}
	return m
}

func (m Model) updateSteps(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task := m.session.Task()
	if next, moved := m.moveCursor(msg, task.StepCount()); moved {
		return next, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.finishing {
			return m, nil
		}
		m.session.Cancel()
		m.log.Info("tui: session cancelled", zap.String("session_id", m.session.ID()))
		m.session = nil
		m.screen = screenTask
		m.cursor = 0
		m.status = "Task cancelled. Nothing was deducted."
	case key.Matches(msg, m.keys.Check):
		status, err := m.session.Acknowledge(m.cursor)
		if err != nil {
			m.status = mapper.Message(err)
			return m, nil
		}
		m.status = ""
		if !status.Done {
			m.cursor = status.Front
		}
	case key.Matches(msg, m.keys.Finish):
		if m.finishing {
			return m, nil
		}
		if !m.session.CanFinish() {
			m.status = mapper.Message(exceptions.ErrGateIncomplete)
			return m, nil
		}
		m.finishing = true
		return m, finishCmd(m.ctx, m.session)
	}
	return m, nil
}

func finishCmd(ctx context.Context, session ports.MaintenanceSession) tea.Cmd {
	return func() tea.Msg {
		card, err := session.Finish(ctx)
		return finishedMsg{card: card, err: err}
	}
}

func (m Model) finished(msg finishedMsg) Model {
	if !m.finishing {
		return m
	}
	m.finishing = false
	if msg.card == nil && errors.Is(msg.err, exceptions.ErrGateIncomplete) {
		m.status = mapper.Message(msg.err)
		return m
	}
	if msg.card != nil {
		m.reports = append(m.reports, msg.card)
	}
	m.session = nil
	m.card = msg.card
	m.failed = msg.card == nil
	m.status = mapper.Message(msg.err)
	m.screen = screenResult
	m.cursor = 0
	return m
}

func (m Model) updateResult(msg tea.KeyMsg) Model {
	if key.Matches(msg, m.keys.Select) {
		m.card = nil
		m.failed = false
		m.status = ""
		m.screen = screenSystem
		m.cursor = 0
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	for _, n := range m.notices {
		b.WriteString(statusStyle.Render("Warning: "+n) + "\n")
	}
	if len(m.notices) > 0 {
		b.WriteString("\n")
	}

	switch m.screen {
	case screenAircraft:
		b.WriteString(titleStyle.Render("Select aircraft") + "\n")
		m.writeList(&b, m.settings.Aircraft)
	case screenSystem:
		b.WriteString(titleStyle.Render("Aircraft: "+m.svc.Aircraft()+" | Select system") + "\n")
		m.writeList(&b, m.settings.Systems)
		m.writeStock(&b)
	case screenTask:
		b.WriteString(titleStyle.Render(m.system+" tasks") + "\n")
		names := make([]string, 0, len(m.tasks))
		for _, t := range m.tasks {
			names = append(names, fmt.Sprintf("%s (%s)", t.Name(), t.ID()))
		}
		m.writeList(&b, names)
		if m.cursor < len(m.tasks) {
			b.WriteString("\n" + panelStyle.Render(strings.TrimRight(mapper.TaskDetails(m.tasks[m.cursor]), "\n")) + "\n")
		}
		m.writeStock(&b)
	case screenSteps:
		m.writeSteps(&b)
	case screenResult:
		if m.failed {
			b.WriteString(errorStyle.Render("Task not completed") + "\n\n")
		} else {
			b.WriteString(titleStyle.Render("Task completed") + "\n")
			b.WriteString(reportStyle.Render(strings.TrimRight(mapper.ReportBlock(m.card), "\n")) + "\n")
		}
		m.writeStock(&b)
		m.writeReportLog(&b)
	}

	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView(m.keys.bindings(m.screen)) + "\n")
	return b.String()
}

func (m Model) writeList(b *strings.Builder, items []string) {
	for i, item := range items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+item) + "\n")
			continue
		}
		b.WriteString("  " + item + "\n")
	}
}

func (m Model) writeStock(b *strings.Builder) {
	b.WriteString("\n" + panelStyle.Render(strings.TrimRight(mapper.StockTable(m.svc.Stock()), "\n")) + "\n")
}

// writeReportLog lists the reports written in this run, oldest first.
func (m Model) writeReportLog(b *strings.Builder) {
	if len(m.reports) == 0 {
		return
	}
	var log strings.Builder
	log.WriteString("Maintenance Report Log\n")
	for _, card := range m.reports {
		log.WriteString(mapper.ReportBlock(card))
	}
	b.WriteString("\n" + panelStyle.Render(strings.TrimRight(log.String(), "\n")) + "\n")
}

func (m Model) writeSteps(b *strings.Builder) {
	task := m.session.Task()
	gate := m.session.Status()
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d/%d", task.Name(), gate.Acknowledged, gate.Total)) + "\n")

	for i, step := range task.Steps() {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%d. %s", i+1, step)
		switch m.session.StepState(i) {
		case entities.StepDone:
			b.WriteString(prefix + doneStyle.Render("[x] "+line) + "\n")
		case entities.StepUnlocked:
			b.WriteString(prefix + "[ ] " + line + "\n")
		default:
			b.WriteString(prefix + lockedStyle.Render("[ ] "+line) + "\n")
		}
	}

	b.WriteString("\nRequired parts: " + strings.Join(task.RequiredParts(), ", ") + "\n")
	finish := "[ Finish ]"
	if m.session.CanFinish() {
		b.WriteString(doneStyle.Render(finish) + "\n")
	} else {
		b.WriteString(disabledStyle.Render(finish) + "\n")
	}
}

// Run starts the program on the terminal and blocks until the operator quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	return err
}
