package usecase

import (
	"time"

	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/pkg/datemath"
	pkgLog "schedule-calendar/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.ProgramacionRepository
	calendar   repository.CalendarRepository
	dateMath   *datemath.Parser
	calendarID string
	now        func() time.Time
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now as the source of the current month.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new schedule UseCase instance. calendar may be nil when Google Calendar
// export is not configured.
func New(
	l pkgLog.Logger,
	repo repository.ProgramacionRepository,
	calendar repository.CalendarRepository,
	dateMath *datemath.Parser,
	calendarID string,
	opts ...Option,
) *implUseCase {
	uc := &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		dateMath:   dateMath,
		calendarID: calendarID,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
