package main

import (
	"context"
	"strings"
	"testing"

	"mro-manager/internal/adapters/output/textfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func helpText() string {
	var sb strings.Builder
	printUsage(&sb)
	return sb.String()
}

func longHelpText(name string) string {
	var sb strings.Builder
	printCommandHelp(&sb, name)
	return sb.String()
}

func TestHelpContainsAllCommands(t *testing.T) {
	help := helpText()
	assert.Contains(t, help, "Usage:")
	for _, cmd := range commands {
		assert.Contains(t, help, cmd.name)
		assert.Contains(t, help, cmd.short)
	}
}

func TestLongHelpForKnownCommands(t *testing.T) {
	for _, cmd := range commands {
		t.Run(cmd.name, func(t *testing.T) {
			assert.Contains(t, longHelpText(cmd.name), cmd.usage)
		})
	}
}

func TestLongHelpUnknownCommand(t *testing.T) {
	assert.Contains(t, longHelpText("no-such-command"), "unknown command")
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, dispatch(ctx, nil))
	assert.NoError(t, dispatch(ctx, []string{"help", "walkthrough"}))

	err := dispatch(ctx, []string{"overhaul"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "overhaul"`)
}

func TestParseWalkthroughFlags(t *testing.T) {
	f, err := parseWalkthroughFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, walkthroughFlags{system: "Avionics", problem: "Faulty avionics display detected during flight."}, f)

	f, err = parseWalkthroughFlags([]string{"--system", "Hydraulic", "--problem", "Fluid leak", "--restock"})
	require.NoError(t, err)
	assert.Equal(t, walkthroughFlags{system: "Hydraulic", problem: "Fluid leak", restock: true}, f)

	_, err = parseWalkthroughFlags([]string{"--bogus"})
	assert.Error(t, err)
	_, err = parseWalkthroughFlags([]string{"extra"})
	assert.Error(t, err)
}

func TestSeed_WritesLoadableFiles(t *testing.T) {
	dir := t.TempDir()
	log := zaptest.NewLogger(t)

	tasksPath, stockPath, err := seed(dir, log)
	require.NoError(t, err)

	records, warnings, err := textfile.NewTaskFile(tasksPath, log).LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, sampleTasks, records)

	parts, warnings, err := textfile.NewStockFile(stockPath, log).LoadStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, sampleStock, parts)
}
