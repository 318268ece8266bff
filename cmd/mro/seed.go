package main

import (
	"context"
	"fmt"
	"path/filepath"

	"mro-manager/internal/adapters/output/textfile"
	"mro-manager/internal/config"
	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/logger"

	"go.uber.org/zap"
)

var sampleTasks = []entities.TaskRecord{
	{
		System: "Avionics",
		Name:   "Avionics Diagnostic Check",
		Steps:  []string{"Power off the avionics unit", "Remove protective covers", "Run diagnostic software", "Replace faulty modules if detected", "Reassemble and test system"},
		Parts:  []string{"AvionicsModule", "ScrewSet", "DiagnosticKit"},
	},
	{
		System: "Hydraulic",
		Name:   "Hydraulic Leak Repair",
		Steps:  []string{"Identify leak location", "Drain hydraulic fluid from reservoir", "Replace damaged O-rings", "Refill hydraulic fluid", "Test hydraulic pressure"},
		Parts:  []string{"O-Ring", "HydraulicFluid", "WrenchSet"},
	},
	{
		System: "Mechanical",
		Name:   "Landing Gear Lubrication",
		Steps:  []string{"Lift aircraft and secure", "Clean landing gear joints", "Apply lubrication grease", "Lower aircraft and perform operational check"},
		Parts:  []string{"LubricationGrease", "RagSet"},
	},
}

var sampleStock = []entities.Part{
	{Name: "AvionicsModule", Quantity: 2},
	{Name: "ScrewSet", Quantity: 10},
	{Name: "DiagnosticKit", Quantity: 1},
	{Name: "O-Ring", Quantity: 5},
	{Name: "HydraulicFluid", Quantity: 3},
	{Name: "WrenchSet", Quantity: 2},
	{Name: "LubricationGrease", Quantity: 4},
	{Name: "RagSet", Quantity: 10},
}

func runSeed(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: mro seed [dir]")
	}
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}
	log, err := logger.Init(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger init error: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tasksPath, stockPath, err := seed(dir, log)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d tasks to %s\n", len(sampleTasks), tasksPath)
	fmt.Printf("wrote %d parts to %s\n", len(sampleStock), stockPath)
	return nil
}

func seed(dir string, log *zap.Logger) (string, string, error) {
	tasksPath := filepath.Join(dir, "tasks.txt")
	stockPath := filepath.Join(dir, "stock.txt")

	log.Info("seed: writing tasks", zap.String("file", tasksPath))
	if err := textfile.NewTaskFile(tasksPath, log).Save(sampleTasks); err != nil {
		return "", "", fmt.Errorf("seed tasks: %w", err)
	}

	log.Info("seed: writing stock", zap.String("file", stockPath))
	if err := textfile.NewStockFile(stockPath, log).Save(sampleStock); err != nil {
		return "", "", fmt.Errorf("seed stock: %w", err)
	}
	return tasksPath, stockPath, nil
}
