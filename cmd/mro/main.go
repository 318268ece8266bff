package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"mro-manager/internal/adapters/input/console"
	"mro-manager/internal/adapters/input/tui"
	"mro-manager/internal/infrastructure/app"
	"mro-manager/internal/mapper"

	"go.uber.org/zap"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(ctx context.Context, args []string) error
}

var commands = []command{
	{
		name:  "walkthrough",
		short: "Run the scripted maintenance scenario",
		usage: "mro walkthrough [--system S] [--problem TEXT] [--restock]",
		long: `Report a problem for a system, pick the first matching task, check its
parts, walk every step in order, deduct parts and append a report.

Without --restock a parts shortage ends the run with no report and stock
left unchanged. With --restock each missing part is restocked by
MRO_RESTOCK_QTY before the task starts.
`,
		run: runWalkthrough,
	},
	{
		name:  "tui",
		short: "Open the interactive maintenance checklist",
		usage: "mro tui",
		long: `Choose an aircraft, a system and a task, then check each step in order.
Finish is enabled once every step is checked. Esc cancels the task with
no effect on stock. Logs go to mro.log unless LOGGER_OUTPUT names a file.
`,
		run: runTUI,
	},
	{
		name:  "tasks",
		short: "List the task catalog",
		usage: "mro tasks [system]",
		long: `Print every loaded task, or only the tasks for one system.
`,
		run: runTasks,
	},
	{
		name:  "stock",
		short: "Print current stock in stock file format",
		usage: "mro stock",
		long: `Print every part as PartName|Quantity in load order.
`,
		run: runStock,
	},
	{
		name:  "seed",
		short: "Write sample task and stock files",
		usage: "mro seed [dir]",
		long: `Write tasks.txt and stock.txt with the sample catalog and stock into dir
(default: current directory). Existing files are overwritten.
`,
		run: runSeed,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "mro - aircraft maintenance workflow\n\n")
	fmt.Fprintf(w, "Usage:\n  mro <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-12s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'mro help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "mro: unknown command %q\n\nRun 'mro help' for usage.\n", name)
}

func dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(ctx, args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'mro help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// walkthrough
// ---------------------------------------------------------------------------

type walkthroughFlags struct {
	system  string
	problem string
	restock bool
}

func parseWalkthroughFlags(args []string) (walkthroughFlags, error) {
	var f walkthroughFlags
	fs := flag.NewFlagSet("walkthrough", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.system, "system", console.DefaultSystem, "affected system")
	fs.StringVar(&f.problem, "problem", console.DefaultProblem, "problem description")
	fs.BoolVar(&f.restock, "restock", false, "restock missing parts before the task")
	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("%w\nusage: mro walkthrough [--system S] [--problem TEXT] [--restock]", err)
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected argument %q\nusage: mro walkthrough [--system S] [--problem TEXT] [--restock]", fs.Arg(0))
	}
	return f, nil
}

func runWalkthrough(ctx context.Context, args []string) error {
	flags, err := parseWalkthroughFlags(args)
	if err != nil {
		return err
	}

	application, err := app.Init(ctx)
	if err != nil {
		return err
	}
	defer application.Close()
	printWarnings(os.Stdout, application.Warnings)

	w := console.NewWalkthrough(application.Service, os.Stdout, application.Log)
	return w.Run(ctx, console.Options{
		System:     flags.system,
		Problem:    flags.problem,
		Restock:    flags.restock,
		RestockQty: application.Config.RestockQty,
	})
}

// ---------------------------------------------------------------------------
// tui
// ---------------------------------------------------------------------------

func runTUI(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: mro tui")
	}

	application, err := app.Init(ctx, app.WithLogFile("mro.log"))
	if err != nil {
		return err
	}
	defer application.Close()

	notices := make([]string, 0, len(application.Warnings))
	for _, w := range application.Warnings {
		notices = append(notices, w.Error())
	}

	application.Log.Info("tui: start", zap.Int("notices", len(notices)))
	m := tui.New(ctx, application.Service, application.Settings, notices, application.Log)
	if err := tui.Run(m); err != nil {
		application.Log.Error("tui: stopped", zap.Error(err))
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// tasks / stock
// ---------------------------------------------------------------------------

func runTasks(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: mro tasks [system]")
	}

	application, err := app.Init(ctx)
	if err != nil {
		return err
	}
	defer application.Close()
	printWarnings(os.Stderr, application.Warnings)

	tasks := application.Service.Tasks()
	if len(args) == 1 {
		tasks = application.Catalog.TasksFor(args[0])
	}
	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return nil
	}
	for i, t := range tasks {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(mapper.TaskDetails(t))
	}
	return nil
}

func runStock(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: mro stock")
	}

	application, err := app.Init(ctx)
	if err != nil {
		return err
	}
	defer application.Close()
	printWarnings(os.Stderr, application.Warnings)

	for _, p := range application.Service.Stock() {
		fmt.Println(mapper.FormatStockLine(p))
	}
	return nil
}

func printWarnings(w io.Writer, warnings []error) {
	for _, err := range warnings {
		fmt.Fprintln(w, mapper.Message(err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dispatch(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mro: %v\n", err)
		stop()
		os.Exit(1)
	}
}
