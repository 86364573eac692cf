package usecase

import (
	"fmt"
	"time"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/datemath"
)

// GenerateDays builds the grid of year/month, day 1 first. A day has an event when any
// event's date equals the day's ISO date.
func GenerateDays(year int, month time.Month, events []model.ScheduleEvent) []model.CalendarDay {
	dates := make(map[string]struct{}, len(events))
	for _, e := range events {
		dates[e.Date] = struct{}{}
	}

	m := datemath.Month{Year: year, Month: month}
	days := make([]model.CalendarDay, m.Days())
	for i := range days {
		iso := m.Date(i + 1)
		_, ok := dates[iso]
		days[i] = model.CalendarDay{
			DayNumber: i + 1,
			DateISO:   iso,
			HasEvent:  ok,
		}
	}
	return days
}

// DayEvents returns the events on date, in their original order.
func DayEvents(events []model.ScheduleEvent, date string) []model.ScheduleEvent {
	out := make([]model.ScheduleEvent, 0)
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// DayDialog presents the events on date, or a notice when there are none.
func DayDialog(date string, events []model.ScheduleEvent) schedule.Dialog {
	daily := DayEvents(events, date)
	if len(daily) == 0 {
		return schedule.Dialog{
			Title:       schedule.DialogTitleNoEvents,
			Icon:        schedule.DialogIconInfo,
			Text:        schedule.DialogTextNoEvents,
			ConfirmText: schedule.DialogConfirm,
		}
	}
	return schedule.Dialog{
		Title:       fmt.Sprintf(schedule.DialogTitleDay, date),
		Entries:     daily,
		ConfirmText: schedule.DialogConfirm,
	}
}

// FetchErrorDialog is shown when the programaciones API could not be reached.
func FetchErrorDialog() schedule.Dialog {
	return schedule.Dialog{
		Title:       schedule.DialogTitleError,
		Icon:        schedule.DialogIconError,
		Text:        schedule.DialogTextError,
		ConfirmText: schedule.DialogConfirm,
	}
}

func (uc *implUseCase) Days(year int, month time.Month, events []model.ScheduleEvent) []model.CalendarDay {
	return GenerateDays(year, month, events)
}

func (uc *implUseCase) DayDialog(date string, events []model.ScheduleEvent) schedule.Dialog {
	return DayDialog(date, events)
}

func (uc *implUseCase) FetchErrorDialog() schedule.Dialog {
	return FetchErrorDialog()
}

// CurrentMonth is the month containing now in the configured location.
func (uc *implUseCase) CurrentMonth() datemath.Month {
	y, m := uc.dateMath.MonthOf(uc.now())
	return datemath.Month{Year: y, Month: m}
}
