package mapper

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"mro-manager/internal/core/domain/entities"
	"mro-manager/internal/core/domain/exceptions"
)

const (
	fieldSep = "|"
	listSep  = ","
)

// TaskRecord parses "System|TaskName|step1,step2|part1,part2". Fields past the
// fourth are ignored. The returned error is a bare reason; loaders wrap it
// with source and line.
func TaskRecord(line string) (entities.TaskRecord, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 4 {
		return entities.TaskRecord{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	return entities.TaskRecord{
		System: fields[0],
		Name:   fields[1],
		Steps:  splitList(fields[2]),
		Parts:  splitList(fields[3]),
	}, nil
}

func FormatTaskRecord(rec entities.TaskRecord) string {
	return strings.Join([]string{
		rec.System,
		rec.Name,
		strings.Join(rec.Steps, listSep),
		strings.Join(rec.Parts, listSep),
	}, fieldSep)
}

// StockLine parses "PartName|Quantity".
func StockLine(line string) (entities.Part, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 2 {
		return entities.Part{}, errors.New("missing quantity")
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return entities.Part{}, fmt.Errorf("invalid quantity %q", fields[1])
	}
	if qty < 0 {
		return entities.Part{}, fmt.Errorf("negative quantity %d", qty)
	}
	return entities.Part{Name: fields[0], Quantity: qty}, nil
}

func FormatStockLine(part entities.Part) string {
	return part.Name + fieldSep + strconv.Itoa(part.Quantity)
}

// ReportBlock renders a card the way it is appended to the report log.
// The system and task come from the card; the aircraft line is omitted when
// no aircraft was chosen.
func ReportBlock(card *entities.ReportCard) string {
	var b strings.Builder
	b.WriteString("=== Maintenance Report ===\n")
	fmt.Fprintf(&b, "Report ID: %s\n", card.ID())
	fmt.Fprintf(&b, "Date: %s\n", card.Date())
	if card.Aircraft() != "" {
		fmt.Fprintf(&b, "Aircraft: %s\n", card.Aircraft())
	}
	fmt.Fprintf(&b, "System: %s\n", card.System())
	for _, task := range card.CompletedTasks() {
		fmt.Fprintf(&b, "Completed Task: %s\n", task)
	}
	b.WriteString("Used Parts:\n")
	for _, part := range card.UsedParts() {
		fmt.Fprintf(&b, "  - %s\n", part)
	}
	b.WriteString("==========================\n\n")
	return b.String()
}

func TaskDetails(task *entities.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task ID: %s\n", task.ID())
	fmt.Fprintf(&b, "Task Name: %s\n", task.Name())
	fmt.Fprintf(&b, "System: %s\n", task.System())
	b.WriteString("Steps:\n")
	for i, step := range task.Steps() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("Required Parts:\n")
	for _, part := range task.RequiredParts() {
		fmt.Fprintf(&b, "- %s\n", part)
	}
	return b.String()
}

func StockTable(parts []entities.Part) string {
	var b strings.Builder
	b.WriteString("--- Current Stock ---\n")
	for _, p := range parts {
		fmt.Fprintf(&b, "%s: %d\n", p.Name, p.Quantity)
	}
	b.WriteString("---------------------\n")
	return b.String()
}

// Message turns a domain error into one line for the operator.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var unavailable *exceptions.PartUnavailableError
	var sink *exceptions.SinkWriteError
	switch {
	case errors.As(err, &unavailable):
		return "Not enough parts in stock. Please restock! (" + shortageList(unavailable.Shortages) + ")"
	case errors.As(err, &sink):
		return fmt.Sprintf("Warning: report could not be saved to %s (%v)", sink.Path, sink.Err)
	case errors.Is(err, exceptions.ErrLoadFormat):
		return "Warning: skipped record: " + err.Error()
	case errors.Is(err, fs.ErrNotExist):
		return "Warning: " + err.Error()
	case errors.Is(err, exceptions.ErrTaskNotFound):
		return "No matching task found: " + err.Error()
	case errors.Is(err, exceptions.ErrStepOutOfOrder),
		errors.Is(err, exceptions.ErrStepOutOfRange):
		return "Check each step in order. You cannot check step i+1 before step i."
	case errors.Is(err, exceptions.ErrGateComplete):
		return "All steps are already checked."
	case errors.Is(err, exceptions.ErrGateIncomplete):
		return "Finish is disabled until every step is checked."
	case errors.Is(err, exceptions.ErrSessionActive):
		return "Another task is in progress. Finish or cancel it first."
	case errors.Is(err, exceptions.ErrSessionClosed):
		return "This task session has ended. Select the task again."
	default:
		return "Error: " + err.Error()
	}
}

func shortageList(shortages []exceptions.Shortage) string {
	out := make([]string, 0, len(shortages))
	for _, s := range shortages {
		out = append(out, s.String())
	}
	return strings.Join(out, "; ")
}

func splitList(field string) []string {
	var out []string
	for _, tok := range strings.Split(field, listSep) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
