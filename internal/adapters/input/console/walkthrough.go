package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
	"mro-manager/internal/core/ports"
	"mro-manager/internal/mapper"

	"go.uber.org/zap"
)

const (
	DefaultSystem  = "Avionics"
	DefaultProblem = "Faulty avionics display detected during flight."
)

type Options struct {
	System  string
	Problem string
	// Restock orders RestockQty of every missing part before the task starts.
	Restock    bool
	RestockQty int
}

// Walkthrough runs one scripted maintenance scenario and prints each stage.
type Walkthrough struct {
	svc ports.MaintenanceUseCases
	out io.Writer
	log *zap.Logger
}

func NewWalkthrough(svc ports.MaintenanceUseCases, out io.Writer, log *zap.Logger) *Walkthrough {
	if log == nil {
		panic("logger is nil")
	}
	return &Walkthrough{
		svc: svc,
		out: out,
		log: log,
	}
}

// Run reports a problem, picks the first candidate task, walks its steps in
// order and finishes it. A parts shortage ends the run without a report and
// is not returned as an error.
func (w *Walkthrough) Run(ctx context.Context, opts Options) error {
	if opts.System == "" {
		opts.System = DefaultSystem
	}
	if opts.Problem == "" {
		opts.Problem = DefaultProblem
	}

	w.log.Info("walkthrough: start", zap.String("system", opts.System), zap.Bool("restock", opts.Restock))

	fmt.Fprint(w.out, mapper.StockTable(w.svc.Stock()))

	problem := entities.NewProblem("P001", opts.System, opts.Problem)
	fmt.Fprintf(w.out, "\n--- New Problem Reported ---\n")
	fmt.Fprintf(w.out, "Problem ID: %s\n", problem.ID)
	fmt.Fprintf(w.out, "System Affected: %s\n", problem.System)
	fmt.Fprintf(w.out, "Description: %s\n", problem.Description)

	fmt.Fprintf(w.out, "\n--- Suggested Tasks for %s ---\n", problem.System)
	candidates, err := w.svc.CandidateTasks(problem)
	if err != nil {
		fmt.Fprintln(w.out, mapper.Message(err))
		return err
	}
	for i, t := range candidates {
		fmt.Fprintf(w.out, "%d. %s (Task ID: %s)\n", i+1, t.Name(), t.ID())
	}

	task := candidates[0]
	fmt.Fprintf(w.out, "\n--- Chosen Task Details ---\n")
	fmt.Fprint(w.out, mapper.TaskDetails(task))

	fmt.Fprintf(w.out, "\nChecking required parts in stock...\n")
	if shortages := w.svc.CheckParts(task); len(shortages) > 0 {
		for _, s := range shortages {
			fmt.Fprintf(w.out, "Part not available in stock: %s. Need to order.\n", s.Part)
		}
		if opts.Restock {
			fmt.Fprintf(w.out, "Not all parts are available. Restocking %d of each missing part.\n", opts.RestockQty)
			for _, s := range shortages {
				if err := w.svc.Restock(s.Part, opts.RestockQty); err != nil {
					fmt.Fprintln(w.out, mapper.Message(err))
					return err
				}
			}
		} else {
			fmt.Fprintf(w.out, "Not all parts are available. Run with --restock to order them.\n")
		}
	}

	session, err := w.svc.BeginTask(task)
	if err != nil {
		fmt.Fprintln(w.out, mapper.Message(err))
		return err
	}

	fmt.Fprintf(w.out, "\n--- Performing Task Steps ---\n")
	for i, step := range task.Steps() {
		if _, err := session.Acknowledge(i); err != nil {
			session.Cancel()
			return fmt.Errorf("acknowledge step %d: %w", i+1, err)
		}
		fmt.Fprintf(w.out, "[x] %d. %s\n", i+1, step)
	}

	fmt.Fprintf(w.out, "\nDeducting parts from stock to perform the task...\n")
	card, err := session.Finish(ctx)
	switch {
	case errors.Is(err, exceptions.ErrPartUnavailable):
		fmt.Fprintf(w.out, "Could not complete task due to parts shortage.\n")
		fmt.Fprintln(w.out, mapper.Message(err))
		w.log.Warn("walkthrough: aborted", zap.String("task_id", task.ID()), zap.Error(err))
		return nil
	case card == nil:
		return err
	}

	fmt.Fprintf(w.out, "Parts successfully deducted from stock.\n")
	fmt.Fprintf(w.out, "\n--- Maintenance Report Card ---\n")
	fmt.Fprint(w.out, mapper.ReportBlock(card))
	if err != nil {
		fmt.Fprintln(w.out, mapper.Message(err))
	}

	fmt.Fprint(w.out, mapper.StockTable(w.svc.Stock()))
	fmt.Fprintf(w.out, "\nProcess completed successfully.\n")

	w.log.Info("walkthrough: done", zap.String("report_id", card.ID()))
	return nil
}
