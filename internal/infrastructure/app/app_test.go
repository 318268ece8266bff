package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"mro-manager/internal/config"
	"mro-manager/internal/core/domain/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Logger: config.LoggerConfig{Env: "development", Output: "stderr"},
		Files: config.FilesConfig{
			Tasks:    filepath.Join(dir, "tasks.txt"),
			Stock:    filepath.Join(dir, "stock.txt"),
			Reports:  filepath.Join(dir, "reports.txt"),
			Settings: filepath.Join(dir, "settings.yaml"),
		},
		RestockQty: 5,
	}
}

func TestNew_LoadsSources(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	require.NoError(t, os.WriteFile(cfg.Files.Tasks, []byte(
		"Hydraulic|Hydraulic Leak Repair|Identify leak location,Test hydraulic pressure|O-Ring,WrenchSet\n"+
			"broken line\n"), 0o644))
	require.NoError(t, os.WriteFile(cfg.Files.Stock, []byte("O-Ring|5\nWrenchSet|2\nO-Ring|7\n"), 0o644))

	a, err := New(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer a.Close()

	require.Len(t, a.Warnings, 1)
	assert.ErrorIs(t, a.Warnings[0], exceptions.ErrLoadFormat)

	assert.Equal(t, []string{"Hydraulic"}, a.Service.Systems())
	qty, ok := a.Inventory.Quantity("O-Ring")
	assert.True(t, ok)
	assert.Equal(t, 7, qty)
	assert.Equal(t, config.DefaultSettings(), a.Settings)
}

func TestNew_MissingSourcesAreWarnings(t *testing.T) {
	a, err := New(context.Background(), testConfig(t.TempDir()), zaptest.NewLogger(t))
	require.NoError(t, err)

	require.Len(t, a.Warnings, 2)
	for _, w := range a.Warnings {
		assert.True(t, errors.Is(w, fs.ErrNotExist), w.Error())
	}
	assert.Empty(t, a.Service.Tasks())
	assert.Empty(t, a.Service.Stock())
}

func TestNew_UnreadableSourceIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	// a directory cannot be scanned as a task file
	require.NoError(t, os.Mkdir(cfg.Files.Tasks, 0o755))

	_, err := New(context.Background(), cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestWithLogFile(t *testing.T) {
	cfg := &config.Config{Logger: config.LoggerConfig{Output: "stderr"}}
	WithLogFile("mro.log")(cfg)
	assert.Equal(t, "mro.log", cfg.Logger.Output)

	cfg.Logger.Output = "/var/log/mro.json"
	WithLogFile("mro.log")(cfg)
	assert.Equal(t, "/var/log/mro.json", cfg.Logger.Output)
}

func TestNew_NegativeStockIsSkipped(t *testing.T) {
	cfg := testConfig(t.TempDir())
	require.NoError(t, os.WriteFile(cfg.Files.Stock, []byte("O-Ring|-3\nWrenchSet|2\n"), 0o644))

	a, err := New(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	var formatErr *exceptions.LoadFormatError
	var found bool
	for _, w := range a.Warnings {
		if errors.As(w, &formatErr) {
			found = true
			assert.Equal(t, 1, formatErr.Line)
			assert.Contains(t, formatErr.Reason, "negative quantity")
		}
	}
	assert.True(t, found)

	_, ok := a.Inventory.Quantity("O-Ring")
	assert.False(t, ok)
	qty, _ := a.Inventory.Quantity("WrenchSet")
	assert.Equal(t, 2, qty)
}
