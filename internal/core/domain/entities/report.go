package entities

// ReportCard records one completed task execution. It is built once at the
// end of a successful session and never mutated.
type ReportCard struct {
	id             string
	date           string
	aircraft       string
	system         string
	sessionID      string
	completedTasks []string
	usedParts      []string
}

func NewReportCard(id, date, aircraft, system, sessionID string, completedTasks, usedParts []string) *ReportCard {
	return &ReportCard{
		id:             id,
		date:           date,
		aircraft:       aircraft,
		system:         system,
		sessionID:      sessionID,
		completedTasks: copyStrings(completedTasks),
		usedParts:      copyStrings(usedParts),
	}
}

func (r *ReportCard) ID() string {
	return r.id
}

// Date is formatted YYYY-MM-DD.
func (r *ReportCard) Date() string {
	return r.date
}

// Aircraft may be empty.
func (r *ReportCard) Aircraft() string {
	return r.aircraft
}

func (r *ReportCard) System() string {
	return r.system
}

func (r *ReportCard) SessionID() string {
	return r.sessionID
}

func (r *ReportCard) CompletedTasks() []string {
	return copyStrings(r.completedTasks)
}

func (r *ReportCard) UsedParts() []string {
	return copyStrings(r.usedParts)
}
