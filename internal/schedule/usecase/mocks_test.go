package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockProgramacionRepo struct {
	wrappers []repository.Wrapper
	err      error
	calls    int
	lastOpt  repository.ListOptions
}

func (m *mockProgramacionRepo) ListByFichaAndCoordination(ctx context.Context, opt repository.ListOptions) ([]repository.Wrapper, error) {
	m.calls++
	m.lastOpt = opt
	if m.err != nil {
		return nil, m.err
	}
	return m.wrappers, nil
}

type mockCalendarRepo struct {
	mu       sync.Mutex
	existing []gcalendar.Event
	created  []gcalendar.CreateEventRequest
	listErr  error
	failOn   string
}

func (m *mockCalendarRepo) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if req.Summary == m.failOn {
		return nil, errors.New("calendar quota exceeded")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:       "evt-" + req.Summary,
		Summary:  req.Summary,
		HtmlLink: "https://calendar.google.com/event?eid=" + req.Summary,
	}, nil
}

func (m *mockCalendarRepo) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []gcalendar.Event
	for _, e := range m.existing {
		if !e.StartTime.Before(req.TimeMin) && e.StartTime.Before(req.TimeMax) {
			out = append(out, e)
		}
	}
	return out, nil
}

func raw(date, workshop string) repository.RawEvent {
	return repository.RawEvent{
		Venue:        "Sede Norte",
		Description:  "Induccion",
		Room:         "Aula 3",
		DateTime:     date + "T00:00:00.000Z",
		StartTime:    "08:00",
		EndTime:      "10:00",
		FichaID:      "2567890",
		WorkshopName: workshop,
		TrainerName:  "Ana Perez",
	}
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}
