package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"mro-manager/internal/adapters/output/memory"
	"mro-manager/internal/adapters/output/textfile"
	"mro-manager/internal/config"
	"mro-manager/internal/core/service"
	"mro-manager/internal/logger"

	"go.uber.org/zap"
)

type App struct {
	Config    *config.Config
	Settings  *config.Settings
	Log       *zap.Logger
	Service   *service.MaintenanceService
	Catalog   *memory.TaskCatalog
	Inventory *memory.InventoryStore
	// Warnings holds skipped records and missing sources found while loading.
	Warnings []error
	close    func()
}

type Option func(*config.Config)

// WithLogFile sends log output to path when it would otherwise go to stderr.
func WithLogFile(path string) Option {
	return func(cfg *config.Config) {
		if cfg.Logger.Output == "" || cfg.Logger.Output == "stderr" {
			cfg.Logger.Output = path
		}
	}
}

func Init(ctx context.Context, opts ...Option) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}

	log, err := logger.Init(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	a, err := New(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return a, nil
}

// New wires the stores and the service from already built config and logger.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	settings, err := config.LoadSettings(cfg.Files.Settings)
	if err != nil {
		log.Error("failed to load settings", zap.String("file", cfg.Files.Settings), zap.Error(err))
		return nil, err
	}

	var warnings []error

	records, skipped, err := textfile.NewTaskFile(cfg.Files.Tasks, log).LoadTasks(ctx)
	warnings = append(warnings, skipped...)
	if warn, err := sourceError(err, "task list"); err != nil {
		return nil, err
	} else if warn != nil {
		warnings = append(warnings, warn)
	}

	catalog := memory.NewTaskCatalog(log)
	catalog.Load(records)

	parts, skipped, err := textfile.NewStockFile(cfg.Files.Stock, log).LoadStock(ctx)
	warnings = append(warnings, skipped...)
	if warn, err := sourceError(err, "stock"); err != nil {
		return nil, err
	} else if warn != nil {
		warnings = append(warnings, warn)
	}

	inventory := memory.NewInventoryStore(log)
	for _, p := range parts {
		inventory.SetPart(p.Name, p.Quantity)
	}

	reports := textfile.NewReportLog(cfg.Files.Reports, log)

	svc, err := service.NewMaintenanceService(catalog, inventory, reports, log)
	if err != nil {
		log.Error("failed to init maintenance service", zap.Error(err))
		return nil, err
	}

	log.Info("app initialised",
		zap.Int("tasks", len(catalog.All())),
		zap.Int("parts", len(parts)),
		zap.Int("warnings", len(warnings)),
		zap.String("report_file", reports.Path()),
	)

	return &App{
		Config:    cfg,
		Settings:  settings,
		Log:       log,
		Service:   svc,
		Catalog:   catalog,
		Inventory: inventory,
		Warnings:  warnings,
		close: func() {
			_ = log.Sync()
		},
	}, nil
}

// sourceError splits a load error into a warning for a missing source and a
// fatal error for anything else.
func sourceError(err error, what string) (warning, fatal error) {
	switch {
	case err == nil:
		return nil, nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("proceeding with empty %s: %w", what, err), nil
	default:
		return nil, fmt.Errorf("load %s: %w", what, err)
	}
}

func (a *App) Close() {
	if a == nil || a.close == nil {
		return
	}
	a.close()
}
