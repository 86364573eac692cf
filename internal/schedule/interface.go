package schedule

import (
	"context"
	"io"
	"time"

	"schedule-calendar/internal/model"
	"schedule-calendar/pkg/datemath"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Validate checks the raw form input. It returns a *ValidationError on the first failing rule.
	Validate(input LookupInput) error
	// Fetch validates the input, queries the programaciones API and returns unique, normalized events.
	Fetch(ctx context.Context, input LookupInput) ([]model.ScheduleEvent, error)
	// Lookup fetches and builds the day grid of the current month.
	Lookup(ctx context.Context, input LookupInput) (LookupOutput, error)
	// Day fetches a lookup and keeps the events of a single date.
	Day(ctx context.Context, input DayInput) (DayOutput, error)
	// ExportGoogle writes a lookup's events into Google Calendar.
	ExportGoogle(ctx context.Context, input ExportGoogleInput) (ExportGoogleOutput, error)

	// Days builds the day grid of year/month from events.
	Days(year int, month time.Month, events []model.ScheduleEvent) []model.CalendarDay
	// DayDialog presents the events of date.
	DayDialog(date string, events []model.ScheduleEvent) Dialog
	// FetchErrorDialog presents a failed fetch.
	FetchErrorDialog() Dialog
	// WriteICS encodes events as an iCalendar document.
	WriteICS(w io.Writer, name string, events []model.ScheduleEvent) error
	// CurrentMonth is the month a new calendar shows.
	CurrentMonth() datemath.Month
}
