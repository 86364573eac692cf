package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/internal/schedule/usecase"
)

func TestGenerateDays(t *testing.T) {
	t.Run("leap february", func(t *testing.T) {
		days := usecase.GenerateDays(2024, time.February, nil)
		require.Len(t, days, 29)
		assert.Equal(t, model.CalendarDay{DayNumber: 1, DateISO: "2024-02-01"}, days[0])
		assert.Equal(t, "2024-02-29", days[28].DateISO)
	})

	t.Run("common february", func(t *testing.T) {
		assert.Len(t, usecase.GenerateDays(2023, time.February, nil), 28)
	})

	t.Run("thirty day month", func(t *testing.T) {
		assert.Len(t, usecase.GenerateDays(2024, time.April, nil), 30)
	})

	t.Run("marks days with events", func(t *testing.T) {
		events := []model.ScheduleEvent{
			{Date: "2024-03-05", WorkshopName: "Excel"},
			{Date: "2024-03-05", WorkshopName: "Word"},
			{Date: "2024-04-05", WorkshopName: "Python"},
		}
		days := usecase.GenerateDays(2024, time.March, events)
		require.Len(t, days, 31)
		for _, d := range days {
			assert.Equal(t, d.DayNumber == 5, d.HasEvent, d.DateISO)
		}
	})
}

func TestDayDialog(t *testing.T) {
	events := []model.ScheduleEvent{
		{Date: "2024-03-05", WorkshopName: "Excel"},
		{Date: "2024-03-06", WorkshopName: "Word"},
		{Date: "2024-03-05", WorkshopName: "Python"},
	}

	t.Run("lists the day's events in order", func(t *testing.T) {
		d := usecase.DayDialog("2024-03-05", events)
		assert.Equal(t, "Schedule for 2024-03-05", d.Title)
		assert.Equal(t, schedule.DialogIconNone, d.Icon)
		require.Len(t, d.Entries, 2)
		assert.Equal(t, "Excel", d.Entries[0].WorkshopName)
		assert.Equal(t, "Python", d.Entries[1].WorkshopName)
		assert.Equal(t, "Close", d.ConfirmText)
	})

	t.Run("no events", func(t *testing.T) {
		d := usecase.DayDialog("2024-03-07", events)
		assert.Equal(t, "No schedule", d.Title)
		assert.Equal(t, "No events scheduled for this day.", d.Text)
		assert.Equal(t, schedule.DialogIconInfo, d.Icon)
		assert.Empty(t, d.Entries)
	})

	t.Run("fetch error", func(t *testing.T) {
		d := usecase.FetchErrorDialog()
		assert.Equal(t, "Error", d.Title)
		assert.Equal(t, "Could not fetch the schedule.", d.Text)
		assert.Equal(t, schedule.DialogIconError, d.Icon)
	})
}

func TestDayEvents(t *testing.T) {
	events := []model.ScheduleEvent{
		{Date: "2024-03-05", WorkshopName: "Excel"},
		{Date: "2024-03-06", WorkshopName: "Word"},
	}
	assert.Len(t, usecase.DayEvents(events, "2024-03-06"), 1)
	assert.Empty(t, usecase.DayEvents(events, "2024-03-07"))
	assert.Empty(t, usecase.DayEvents(nil, "2024-03-07"))
}
