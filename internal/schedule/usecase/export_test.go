package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/pkg/gcalendar"
)

func TestWriteICS(t *testing.T) {
	uc := newUseCase(t, &mockProgramacionRepo{}, nil)

	t.Run("timed and all-day events", func(t *testing.T) {
		events := []model.ScheduleEvent{
			{Date: "2024-03-05", WorkshopName: "Excel", StartTime: "08:00", EndTime: "10:00", Venue: "Sede Norte", Room: "Aula 3"},
			{Date: "2024-03-06", WorkshopName: "Word", StartTime: "pending"},
			{Date: "not-a-date", WorkshopName: "Broken"},
		}
		var buf bytes.Buffer
		require.NoError(t, uc.WriteICS(&buf, "Ficha 2567890", events))

		out := buf.String()
		assert.Contains(t, out, "SUMMARY:Excel")
		assert.Contains(t, out, "SUMMARY:Word")
		assert.NotContains(t, out, "Broken")
		assert.Contains(t, out, "20240305T080000Z")
		assert.Contains(t, out, "VALUE=DATE:20240306")
		assert.Contains(t, out, "Sede Norte - Aula 3")
		assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	})

	t.Run("nothing to export", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, uc.WriteICS(&buf, "empty", nil), schedule.ErrNothingToExport)
	})
}

func TestExportGoogle(t *testing.T) {
	ctx := context.Background()
	in := schedule.LookupInput{Ficha: "2567890", Coordinacion: "Gestion"}
	repo := func() *mockProgramacionRepo {
		return &mockProgramacionRepo{wrappers: []repository.Wrapper{
			{Events: []repository.RawEvent{raw("2024-03-05", "Excel"), raw("2024-03-06", "Word")}},
		}}
	}

	t.Run("not configured", func(t *testing.T) {
		uc := newUseCase(t, repo(), nil)
		_, err := uc.ExportGoogle(ctx, schedule.ExportGoogleInput{LookupInput: in})
		assert.ErrorIs(t, err, schedule.ErrCalendarUnavailable)
	})

	t.Run("creates events and skips existing ones", func(t *testing.T) {
		cal := &mockCalendarRepo{existing: []gcalendar.Event{
			{Summary: "Word", StartTime: time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)},
		}}
		uc := newUseCase(t, repo(), cal)

		out, err := uc.ExportGoogle(ctx, schedule.ExportGoogleInput{LookupInput: in, CalendarID: "team@example.com"})
		require.NoError(t, err)

		assert.Equal(t, 1, out.Count)
		require.Len(t, out.Events, 2)
		assert.Equal(t, "https://calendar.google.com/event?eid=Excel", out.Events[0].Link)
		assert.True(t, out.Events[1].Skipped)

		require.Len(t, cal.created, 1)
		req := cal.created[0]
		assert.Equal(t, "team@example.com", req.CalendarID)
		assert.Equal(t, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), req.StartTime)
		assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), req.EndTime)
		assert.False(t, req.AllDay)
		assert.Equal(t, "UTC", req.Timezone)
		assert.Contains(t, req.Description, "Trainer: Ana Perez")
	})

	t.Run("default calendar", func(t *testing.T) {
		cal := &mockCalendarRepo{}
		uc := newUseCase(t, repo(), cal)

		_, err := uc.ExportGoogle(ctx, schedule.ExportGoogleInput{LookupInput: in})
		require.NoError(t, err)
		require.Len(t, cal.created, 2)
		assert.Equal(t, "primary", cal.created[0].CalendarID)
	})

	t.Run("calendar failure", func(t *testing.T) {
		cal := &mockCalendarRepo{failOn: "Excel"}
		uc := newUseCase(t, repo(), cal)

		_, err := uc.ExportGoogle(ctx, schedule.ExportGoogleInput{LookupInput: in})
		assert.Error(t, err)
	})

	t.Run("list failure", func(t *testing.T) {
		listErr := errors.New("forbidden")
		uc := newUseCase(t, repo(), &mockCalendarRepo{listErr: listErr})

		_, err := uc.ExportGoogle(ctx, schedule.ExportGoogleInput{LookupInput: in})
		assert.ErrorIs(t, err, listErr)
	})

	t.Run("nothing to export", func(t *testing.T) {
		uc := newUseCase(t, &mockProgramacionRepo{}, &mockCalendarRepo{})
		_, err := uc.ExportGoogle(ctx, schedule.ExportGoogleInput{LookupInput: in})
		assert.ErrorIs(t, err, schedule.ErrNothingToExport)
	})
}
