package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"schedule-calendar/internal/model"
	"schedule-calendar/pkg/icalendar"
)

const uidDomain = "schedule-calendar"

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04 pm",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseClock reads the hour and minute of an upstream time string.
func parseClock(s string) (int, int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

// sessionBounds returns the start and end of an event held on day. The event is all-day when
// its times cannot be read or do not form a positive interval.
func sessionBounds(day time.Time, e model.ScheduleEvent) (time.Time, time.Time, bool) {
	sh, sm, okStart := parseClock(e.StartTime)
	eh, em, okEnd := parseClock(e.EndTime)
	if okStart && okEnd {
		start := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, day.Location())
		end := time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, day.Location())
		if end.After(start) {
			return start, end, false
		}
	}
	start, end := icalendar.DayBounds(day)
	return start, end, true
}

// eventUID is stable for a (ficha, date, workshop) triple so re-exports update instead of duplicate.
func eventUID(e model.ScheduleEvent) string {
	name := e.FichaID + "|" + e.Date + "|" + e.WorkshopName
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@" + uidDomain
}

func eventDescription(e model.ScheduleEvent) string {
	lines := make([]string, 0, 4)
	if e.TrainerName != "" {
		lines = append(lines, "Trainer: "+e.TrainerName)
	}
	if e.Description != "" {
		lines = append(lines, e.Description)
	}
	if e.FichaID != "" {
		lines = append(lines, "Ficha: "+e.FichaID)
	}
	return strings.Join(lines, "\n")
}

func eventLocation(e model.ScheduleEvent) string {
	switch {
	case e.Venue != "" && e.Room != "":
		return fmt.Sprintf("%s - %s", e.Venue, e.Room)
	case e.Venue != "":
		return e.Venue
	default:
		return e.Room
	}
}
