package widget

import (
	"time"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
)

// Status is the widget's position in the lookup lifecycle.
type Status string

const (
	StatusIdle             Status = "idle"
	StatusValidating       Status = "validating"
	StatusValidationFailed Status = "validation_failed"
	StatusFetching         Status = "fetching"
	StatusDisplaying       Status = "displaying"
	StatusFetchFailed      Status = "fetch_failed"
)

// State is everything a page render needs. Snapshots never share slices with the widget.
type State struct {
	Status Status
	Form   model.FormState

	Events []model.ScheduleEvent
	Days   []model.CalendarDay
	Year   int
	Month  time.Month
	// Query is the input of the lookup currently displayed.
	Query schedule.LookupInput

	// Visible is set once a lookup has succeeded.
	Visible bool
	// Stale marks a visible calendar whose latest refresh failed.
	Stale bool

	Dialog     *schedule.Dialog
	Generation uint64
}

// Ticket identifies one submission. Results are applied only for the latest ticket.
type Ticket struct {
	Generation uint64
	Input      schedule.LookupInput
}
