package icalendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
)

// Encode writes events as an iCalendar document named name. stamp is used as DTSTAMP.
func Encode(w io.Writer, name string, events []Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, calVersion)
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(ical.PropCalendarScale, calScale)
	cal.Props.SetText(ical.PropMethod, methodPublish)
	if name != "" {
		cal.Props.Set(&ical.Prop{Name: propCalName, Params: ical.Params{}, Value: name})
	}

	for _, e := range events {
		if e.UID == "" {
			return fmt.Errorf("icalendar: event %q has no UID", e.Summary)
		}

		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, e.UID)
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		if e.AllDay {
			ev.Props.SetDate(ical.PropDateTimeStart, e.Start)
			ev.Props.SetDate(ical.PropDateTimeEnd, e.End)
		} else {
			ev.Props.SetDateTime(ical.PropDateTimeStart, e.Start)
			ev.Props.SetDateTime(ical.PropDateTimeEnd, e.End)
		}
		ev.Props.SetText(ical.PropSummary, e.Summary)
		if e.Description != "" {
			ev.Props.SetText(ical.PropDescription, e.Description)
		}
		if e.Location != "" {
			ev.Props.SetText(ical.PropLocation, e.Location)
		}
		cal.Children = append(cal.Children, ev.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("icalendar: encode: %w", err)
	}
	return nil
}

// DayBounds returns the all-day start and exclusive end of date.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
