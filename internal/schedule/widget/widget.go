package widget

import (
	"errors"
	"slices"
	"sync"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/metrics"
)

// ValidateFunc checks raw form input.
type ValidateFunc func(schedule.LookupInput) error

// Widget is the calendar state of one visitor. All transitions hold mu; fetches run outside it.
type Widget struct {
	mu    sync.Mutex
	state State
}

// New returns an idle widget with no calendar.
func New() *Widget {
	return &Widget{state: State{Status: StatusIdle}}
}

// Submit records the form input and validates it. On success it opens a new generation and
// returns the ticket the fetch result must be applied with.
func (w *Widget) Submit(input schedule.LookupInput, validate ValidateFunc) (Ticket, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.Form = model.FormState{Ficha: input.Ficha, Coordinacion: input.Coordinacion}
	w.state.Form.ClearErrors()
	w.state.Status = StatusValidating

	if err := validate(input); err != nil {
		w.state.Status = StatusValidationFailed
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) && vErr.Field == schedule.FieldCoordinacion {
			w.state.Form.CoordinacionError = vErr.Err.Error()
		} else {
			w.state.Form.FichaError = errorText(err)
		}
		return Ticket{}, err
	}

	w.state.Generation++
	w.state.Status = StatusFetching
	return Ticket{Generation: w.state.Generation, Input: input}, nil
}

// Complete replaces the calendar with a successful lookup.
func (w *Widget) Complete(t Ticket, out schedule.LookupOutput) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t.Generation != w.state.Generation {
		metrics.SupersededResults.Inc()
		return ErrSuperseded
	}

	w.state.Events = slices.Clone(out.Events)
	w.state.Days = slices.Clone(out.Days)
	w.state.Year = out.Year
	w.state.Month = out.Month
	w.state.Query = t.Input
	w.state.Visible = true
	w.state.Stale = false
	w.state.Dialog = nil
	w.state.Status = StatusDisplaying
	return nil
}

// Fail records a failed lookup. A calendar already shown stays visible and is marked stale.
func (w *Widget) Fail(t Ticket, dialog schedule.Dialog) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t.Generation != w.state.Generation {
		metrics.SupersededResults.Inc()
		return ErrSuperseded
	}

	w.state.Stale = w.state.Visible
	w.state.Dialog = &dialog
	w.state.Status = StatusFetchFailed
	return nil
}

// OpenDialog shows d over the current state.
func (w *Widget) OpenDialog(d schedule.Dialog) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Dialog = &d
}

// CloseDialog dismisses the open dialog, if any.
func (w *Widget) CloseDialog() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Dialog = nil
}

// Events returns a copy of the stored events.
func (w *Widget) Events() []model.ScheduleEvent {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.state.Events)
}

// Snapshot returns a deep copy of the current state.
func (w *Widget) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// SnapshotAndDismiss returns the current state and closes its dialog, so a pending dialog is
// shown exactly once.
func (w *Widget) SnapshotAndDismiss() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.snapshot()
	w.state.Dialog = nil
	return s
}

func (w *Widget) snapshot() State {
	s := w.state
	s.Events = slices.Clone(w.state.Events)
	s.Days = slices.Clone(w.state.Days)
	if w.state.Dialog != nil {
		d := *w.state.Dialog
		d.Entries = slices.Clone(d.Entries)
		s.Dialog = &d
	}
	return s
}

func errorText(err error) string {
	var vErr *schedule.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Err.Error()
	}
	return err.Error()
}
