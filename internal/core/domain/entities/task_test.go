package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_IsImmutable(t *testing.T) {
	steps := []string{"Identify leak location", "Refill hydraulic fluid"}
	parts := []string{"O-Ring", "HydraulicFluid"}
	task := NewTask("T002", "Hydraulic Leak Repair", "Hydraulic", steps, parts)

	steps[0] = "changed"
	parts[0] = "changed"
	assert.Equal(t, "Identify leak location", task.Steps()[0])
	assert.Equal(t, "O-Ring", task.RequiredParts()[0])

	got := task.Steps()
	got[1] = "changed"
	assert.Equal(t, "Refill hydraulic fluid", task.Steps()[1])
	assert.Equal(t, 2, task.StepCount())
}

func TestTask_Record(t *testing.T) {
	task := NewTask("T003", "Landing Gear Lubrication", "Mechanical",
		[]string{"Lift aircraft and secure"}, []string{"LubricationGrease", "RagSet"})

	assert.Equal(t, TaskRecord{
		System: "Mechanical",
		Name:   "Landing Gear Lubrication",
		Steps:  []string{"Lift aircraft and secure"},
		Parts:  []string{"LubricationGrease", "RagSet"},
	}, task.Record())
}

func TestReportCard_CopiesInputs(t *testing.T) {
	parts := []string{"AvionicsModule"}
	card := NewReportCard("RPT-1001", "2024-05-01", "", "Avionics", "s-1", []string{"Avionics Diagnostic Check"}, parts)
	parts[0] = "changed"

	assert.Equal(t, []string{"AvionicsModule"}, card.UsedParts())
	assert.Empty(t, card.Aircraft())
	assert.Equal(t, "RPT-1001", card.ID())
}
