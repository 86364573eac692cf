package usecase

import (
	"context"
	"fmt"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/pkg/metrics"
)

// Fetch validates the input and returns the unique, normalized events of the lookup.
func (uc *implUseCase) Fetch(ctx context.Context, input schedule.LookupInput) ([]model.ScheduleEvent, error) {
	if err := Validate(input); err != nil {
		metrics.ScheduleLookups.WithLabelValues(metrics.OutcomeValidationError).Inc()
		return nil, err
	}

	wrappers, err := uc.repo.ListByFichaAndCoordination(ctx, repository.ListOptions{
		Ficha:        input.Ficha,
		Coordinacion: input.Coordinacion,
	})
	if err != nil {
		metrics.ScheduleLookups.WithLabelValues(metrics.OutcomeFetchError).Inc()
		uc.l.Errorf(ctx, "%s: ficha=%s: %v", schedule.LogPrefixLookup, input.Ficha, err)
		return nil, fmt.Errorf("%w: %w", schedule.ErrFetchFailed, err)
	}

	events := Normalize(wrappers)
	raw := countRaw(wrappers)
	if dups := raw - len(events); dups > 0 {
		metrics.DuplicateEvents.Add(float64(dups))
	}
	metrics.ScheduleLookups.WithLabelValues(metrics.OutcomeOK).Inc()

	uc.l.Infof(ctx, "%s: ficha=%s coordinacion=%q raw=%d unique=%d",
		schedule.LogPrefixLookup, input.Ficha, input.Coordinacion, raw, len(events))
	return events, nil
}

// Lookup fetches the events and builds the grid of the current month.
func (uc *implUseCase) Lookup(ctx context.Context, input schedule.LookupInput) (schedule.LookupOutput, error) {
	events, err := uc.Fetch(ctx, input)
	if err != nil {
		return schedule.LookupOutput{}, err
	}

	m := uc.CurrentMonth()
	return schedule.LookupOutput{
		Events: events,
		Days:   GenerateDays(m.Year, m.Month, events),
		Year:   m.Year,
		Month:  m.Month,
	}, nil
}

// Day fetches the lookup and keeps the events of input.Date.
func (uc *implUseCase) Day(ctx context.Context, input schedule.DayInput) (schedule.DayOutput, error) {
	if err := Validate(input.LookupInput); err != nil {
		return schedule.DayOutput{}, err
	}
	if _, err := uc.dateMath.ParseDate(input.Date); err != nil {
		return schedule.DayOutput{}, schedule.ErrInvalidDate
	}

	events, err := uc.Fetch(ctx, input.LookupInput)
	if err != nil {
		return schedule.DayOutput{}, err
	}

	return schedule.DayOutput{
		Date:   input.Date,
		Events: DayEvents(events, input.Date),
		Dialog: DayDialog(input.Date, events),
	}, nil
}
