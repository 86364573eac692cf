package repository

import (
	"context"

	"schedule-calendar/pkg/gcalendar"
)

// ProgramacionRepository reads schedule records from the programaciones API.
type ProgramacionRepository interface {
	ListByFichaAndCoordination(ctx context.Context, opt ListOptions) ([]Wrapper, error)
}

// CalendarRepository writes schedule events to an external calendar.
type CalendarRepository interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
