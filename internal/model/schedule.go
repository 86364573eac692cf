package model

// ScheduleEvent is a normalized schedule entry for one workshop session.
// Unique per (Date, WorkshopName) within a single lookup.
type ScheduleEvent struct {
	Venue        string `json:"venue"`
	Description  string `json:"description"`
	Room         string `json:"room"`
	Date         string `json:"date"` // YYYY-MM-DD
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	FichaID      string `json:"ficha_id"`
	WorkshopName string `json:"workshop_name"`
	TrainerName  string `json:"trainer_name"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	DayNumber int    `json:"day_number"`
	DateISO   string `json:"date"`
	HasEvent  bool   `json:"has_event"`
}

// FormState is the lookup form as last submitted, with its per-field error slots.
type FormState struct {
	Ficha             string
	Coordinacion      string
	FichaError        string
	CoordinacionError string
}

// ClearErrors empties both error slots.
func (f *FormState) ClearErrors() {
	f.FichaError = ""
	f.CoordinacionError = ""
}
