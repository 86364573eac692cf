package usecase

import (
	"context"
	"fmt"
	"io"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/gcalendar"
	"schedule-calendar/pkg/icalendar"
)

// WriteICS encodes events as an iCalendar document. Events whose date cannot be parsed are skipped.
func (uc *implUseCase) WriteICS(w io.Writer, name string, events []model.ScheduleEvent) error {
	if len(events) == 0 {
		return schedule.ErrNothingToExport
	}

	out := make([]icalendar.Event, 0, len(events))
	for _, e := range events {
		day, err := uc.dateMath.ParseDate(e.Date)
		if err != nil {
			uc.l.Warnf(context.Background(), "%s: skip %q: %v", schedule.LogPrefixExport, e.WorkshopName, err)
			continue
		}
		start, end, allDay := sessionBounds(day, e)
		out = append(out, icalendar.Event{
			UID:         eventUID(e),
			Summary:     e.WorkshopName,
			Description: eventDescription(e),
			Location:    eventLocation(e),
			Start:       start,
			End:         end,
			AllDay:      allDay,
		})
	}
	if len(out) == 0 {
		return schedule.ErrNothingToExport
	}

	return icalendar.Encode(w, name, out, uc.now())
}

// ExportGoogle copies a lookup's events into Google Calendar. An event whose summary already
// exists in its time range is reported as skipped.
func (uc *implUseCase) ExportGoogle(ctx context.Context, input schedule.ExportGoogleInput) (schedule.ExportGoogleOutput, error) {
	if uc.calendar == nil {
		return schedule.ExportGoogleOutput{}, schedule.ErrCalendarUnavailable
	}

	events, err := uc.Fetch(ctx, input.LookupInput)
	if err != nil {
		return schedule.ExportGoogleOutput{}, err
	}
	if len(events) == 0 {
		return schedule.ExportGoogleOutput{}, schedule.ErrNothingToExport
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}
	timezone := uc.timezone()

	out := schedule.ExportGoogleOutput{Events: make([]schedule.ExportedEvent, 0, len(events))}
	for _, e := range events {
		day, err := uc.dateMath.ParseDate(e.Date)
		if err != nil {
			uc.l.Warnf(ctx, "%s: skip %q: %v", schedule.LogPrefixExport, e.WorkshopName, err)
			continue
		}
		start, end, allDay := sessionBounds(day, e)

		existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: calendarID,
			TimeMin:    start,
			TimeMax:    end,
		})
		if err != nil {
			uc.l.Errorf(ctx, "%s: list events: %v", schedule.LogPrefixExport, err)
			return schedule.ExportGoogleOutput{}, fmt.Errorf("list calendar events: %w", err)
		}
		if hasSummary(existing, e.WorkshopName) {
			out.Events = append(out.Events, schedule.ExportedEvent{
				WorkshopName: e.WorkshopName,
				Date:         e.Date,
				Skipped:      true,
			})
			continue
		}

		created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  calendarID,
			Summary:     e.WorkshopName,
			Description: eventDescription(e),
			Location:    eventLocation(e),
			StartTime:   start,
			EndTime:     end,
			AllDay:      allDay,
			Timezone:    timezone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "%s: create event %q: %v", schedule.LogPrefixExport, e.WorkshopName, err)
			return schedule.ExportGoogleOutput{}, fmt.Errorf("create calendar event: %w", err)
		}

		out.Events = append(out.Events, schedule.ExportedEvent{
			WorkshopName: e.WorkshopName,
			Date:         e.Date,
			Link:         created.HtmlLink,
		})
		out.Count++
	}

	uc.l.Infof(ctx, "%s: created=%d total=%d calendar=%s", schedule.LogPrefixExport, out.Count, len(out.Events), calendarID)
	return out, nil
}

func (uc *implUseCase) timezone() string {
	name := uc.dateMath.Location().String()
	if name == "Local" {
		return ""
	}
	return name
}

func hasSummary(events []gcalendar.Event, summary string) bool {
	for _, e := range events {
		if e.Summary == summary {
			return true
		}
	}
	return false
}
