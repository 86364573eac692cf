package schedule

import (
	"time"

	"schedule-calendar/internal/model"
)

// Field names a lookup form field.
type Field string

const (
	FieldFicha        Field = "ficha"
	FieldCoordinacion Field = "coordinacion"
)

// LookupInput is the raw lookup form input.
type LookupInput struct {
	Ficha        string
	Coordinacion string
}

// LookupOutput is the result of a successful lookup for the current month.
type LookupOutput struct {
	Events []model.ScheduleEvent
	Days   []model.CalendarDay
	Year   int
	Month  time.Month
}

// DayInput asks for the events of one date of a lookup.
type DayInput struct {
	LookupInput
	Date string // YYYY-MM-DD
}

// DayOutput holds the events of one date and the dialog presenting them.
type DayOutput struct {
	Date   string
	Events []model.ScheduleEvent
	Dialog Dialog
}

// ExportGoogleInput asks to copy a lookup's events into a Google Calendar.
type ExportGoogleInput struct {
	LookupInput
	CalendarID string // empty means the configured default
}

// ExportedEvent is a single event written to Google Calendar.
type ExportedEvent struct {
	WorkshopName string
	Date         string
	Link         string
	Skipped      bool // already present in the calendar
}

// ExportGoogleOutput is the result of a Google Calendar export.
type ExportGoogleOutput struct {
	Events []ExportedEvent
	Count  int
}

// DialogIcon selects the dialog decoration.
type DialogIcon string

const (
	DialogIconNone  DialogIcon = ""
	DialogIconInfo  DialogIcon = "info"
	DialogIconError DialogIcon = "error"
)

// Dialog is a modal with a title, either plain text or a list of schedule entries,
// and a single dismiss action.
type Dialog struct {
	Title       string
	Icon        DialogIcon
	Text        string
	Entries     []model.ScheduleEvent
	ConfirmText string
}
