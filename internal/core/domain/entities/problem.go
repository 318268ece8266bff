package entities

// Problem is a reported defect. Only its System is used to find candidate
// tasks; problems are never persisted.
type Problem struct {
	ID          string `json:"id"`
	System      string `json:"system"`
	Description string `json:"description"`
}

func NewProblem(id, system, description string) Problem {
	return Problem{ID: id, System: system, Description: description}
}
