package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mro-manager/internal/adapters/output/memory"
	"mro-manager/internal/adapters/output/textfile"
	"mro-manager/internal/config"
	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type fixture struct {
	model      Model
	svc        *service.MaintenanceService
	inventory  *memory.InventoryStore
	reportPath string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zaptest.NewLogger(t)

	catalog := memory.NewTaskCatalog(log)
	catalog.Load([]entities.TaskRecord{
		{
			System: "Hydraulic",
			Name:   "Hydraulic Leak Repair",
			Steps:  []string{"Identify leak location", "Replace damaged O-rings", "Test hydraulic pressure"},
			Parts:  []string{"O-Ring", "HydraulicFluid"},
		},
	})
	inventory := memory.NewInventoryStore(log)
	inventory.AddPart("O-Ring", 5)
	inventory.AddPart("HydraulicFluid", 3)

	reportPath := filepath.Join(t.TempDir(), "reports.txt")
	svc, err := service.NewMaintenanceService(catalog, inventory, textfile.NewReportLog(reportPath, log), log)
	require.NoError(t, err)

	return &fixture{
		model:      New(context.Background(), svc, config.DefaultSettings(), nil, log),
		svc:        svc,
		inventory:  inventory,
		reportPath: reportPath,
	}
}

// send feeds msgs through Update and runs any returned command, except
// tea.Quit, feeding its message back in.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			continue
		}
		out := cmd()
		if _, quit := out.(tea.QuitMsg); quit {
			continue
		}
		next, _ = m.Update(out)
		m = next.(Model)
	}
	return m
}

// toSteps selects Boeing 737, Hydraulic, and the first task.
func toSteps(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, keyEnter, keyDown, keyEnter, keyEnter)
	require.Equal(t, screenSteps, m.screen)
	return m
}

func TestModel_SelectionFlow(t *testing.T) {
	f := newFixture(t)
	m := f.model

	assert.Contains(t, m.View(), "Select aircraft")
	m = send(t, m, keyEnter)
	assert.Equal(t, screenSystem, m.screen)
	assert.Equal(t, "Boeing 737", f.svc.Aircraft())

	m = send(t, m, keyDown, keyEnter)
	assert.Equal(t, screenTask, m.screen)
	assert.Contains(t, m.View(), "Hydraulic Leak Repair (T001)")

	m = send(t, m, keyEnter)
	assert.Equal(t, screenSteps, m.screen)
	assert.Empty(t, m.status)
}

func TestModel_SystemWithoutTasks(t *testing.T) {
	f := newFixture(t)
	m := send(t, f.model, keyEnter, keyEnter)

	assert.Equal(t, screenSystem, m.screen)
	assert.Contains(t, m.status, "No matching task found")
}

func TestModel_OnlyFrontStepCanBeChecked(t *testing.T) {
	f := newFixture(t)
	m := toSteps(t, f.model)

	// cursor on step 2 while step 1 is open
	m = send(t, m, keyDown, keySpace)
	assert.Equal(t, entities.StepUnlocked, m.session.StepState(0))
	assert.Equal(t, entities.StepLocked, m.session.StepState(1))
	assert.Contains(t, m.status, "in order")

	m = send(t, m, runes("f"))
	assert.Equal(t, screenSteps, m.screen)
	assert.Equal(t, "Finish is disabled until every step is checked.", m.status)
}

func TestModel_CompleteTask(t *testing.T) {
	f := newFixture(t)
	m := toSteps(t, f.model)

	m = send(t, m, keySpace, keySpace)
	assert.False(t, m.session.CanFinish())
	m = send(t, m, keySpace)
	assert.True(t, m.session.CanFinish())

	m = send(t, m, runes("f"))
	require.Equal(t, screenResult, m.screen)
	require.NotNil(t, m.card)
	assert.False(t, m.failed)
	assert.Contains(t, m.View(), "Report ID: RPT-1001")
	assert.Contains(t, m.View(), "Aircraft: Boeing 737")

	qty, _ := f.inventory.Quantity("O-Ring")
	assert.Equal(t, 4, qty)
	data, err := os.ReadFile(f.reportPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "Report ID:"))

	m = send(t, m, keyEnter)
	assert.Equal(t, screenSystem, m.screen)
	assert.Nil(t, m.card)
}

func TestModel_ShortageShowsFailure(t *testing.T) {
	f := newFixture(t)
	f.inventory.SetPart("HydraulicFluid", 0)
	m := toSteps(t, f.model)
	assert.Contains(t, m.status, "Need to order: HydraulicFluid")

	m = send(t, m, keySpace, keySpace, keySpace, runes("f"))
	require.Equal(t, screenResult, m.screen)
	assert.True(t, m.failed)
	assert.Nil(t, m.card)
	assert.Contains(t, m.status, "Please restock")

	qty, _ := f.inventory.Quantity("O-Ring")
	assert.Equal(t, 5, qty)
	_, err := os.Stat(f.reportPath)
	assert.True(t, os.IsNotExist(err))
}

func TestModel_EscCancelsSession(t *testing.T) {
	f := newFixture(t)
	m := toSteps(t, f.model)
	m = send(t, m, keySpace, keyEsc)

	assert.Equal(t, screenTask, m.screen)
	assert.Nil(t, m.session)
	assert.Contains(t, m.status, "cancelled")

	// a new session can start once the old one is cancelled
	m = send(t, m, keyEnter)
	assert.Equal(t, screenSteps, m.screen)
	assert.Equal(t, entities.StepUnlocked, m.session.StepState(0))
}

func TestModel_NoticesShownOnFirstScreen(t *testing.T) {
	f := newFixture(t)
	m := New(context.Background(), f.svc, nil, []string{"proceeding with empty stock"}, zaptest.NewLogger(t))

	assert.Contains(t, m.View(), "Warning: proceeding with empty stock")
	m = send(t, m, keyEnter)
	assert.NotContains(t, m.View(), "proceeding with empty stock")
}

func TestModel_RepeatedFinishKeepsResult(t *testing.T) {
	f := newFixture(t)
	m := toSteps(t, f.model)
	m = send(t, m, keySpace, keySpace, keySpace)

	next, first := m.Update(runes("f"))
	m = next.(Model)
	require.NotNil(t, first)
	next, second := m.Update(runes("f"))
	m = next.(Model)
	assert.Nil(t, second)
	next, _ = m.Update(keyEsc)
	m = next.(Model)
	require.NotNil(t, m.session)

	next, _ = m.Update(first())
	m = next.(Model)
	// a late duplicate outcome must not replace the finished result
	next, _ = m.Update(finishedMsg{err: exceptions.ErrSessionClosed})
	m = next.(Model)

	require.Equal(t, screenResult, m.screen)
	assert.False(t, m.failed)
	require.NotNil(t, m.card)
	assert.Equal(t, "RPT-1001", m.card.ID())
	assert.Len(t, m.reports, 1)

	qty, _ := f.inventory.Quantity("O-Ring")
	assert.Equal(t, 4, qty)
}

func TestModel_StockPanelRefreshesAfterCompletion(t *testing.T) {
	f := newFixture(t)
	m := send(t, f.model, keyEnter)
	assert.Contains(t, m.View(), "--- Current Stock ---")
	assert.Contains(t, m.View(), "O-Ring: 5")

	m = send(t, m, keyDown, keyEnter)
	assert.Contains(t, m.View(), "O-Ring: 5")
	m = send(t, m, keyEnter, keySpace, keySpace, keySpace, runes("f"))
	require.Equal(t, screenResult, m.screen)
	assert.Contains(t, m.View(), "O-Ring: 4")
	assert.NotContains(t, m.View(), "O-Ring: 5")

	m = send(t, m, keyEnter)
	assert.Contains(t, m.View(), "O-Ring: 4")
}

func TestModel_TaskScreenShowsDetails(t *testing.T) {
	f := newFixture(t)
	m := send(t, f.model, keyEnter, keyDown, keyEnter)
	require.Equal(t, screenTask, m.screen)

	view := m.View()
	assert.Contains(t, view, "Task ID: T001")
	assert.Contains(t, view, "2. Replace damaged O-rings")
	assert.Contains(t, view, "- HydraulicFluid")
}

func TestModel_ReportLogAccumulates(t *testing.T) {
	f := newFixture(t)
	f.inventory.SetPart("O-Ring", 10)
	m := toSteps(t, f.model)
	m = send(t, m, keySpace, keySpace, keySpace, runes("f"))
	require.Equal(t, screenResult, m.screen)

	// back to the system screen, then Hydraulic and the task again
	m = send(t, m, keyEnter, keyDown, keyEnter, keyEnter, keySpace, keySpace, keySpace, runes("f"))
	require.Equal(t, screenResult, m.screen)

	view := m.View()
	assert.Contains(t, view, "Maintenance Report Log")
	assert.Contains(t, view, "Report ID: RPT-1001")
	assert.Contains(t, view, "Report ID: RPT-1002")
	assert.Len(t, m.reports, 2)
}
