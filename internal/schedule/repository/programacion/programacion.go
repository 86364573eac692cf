package programacion

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/pkg/metrics"
	pkgProgramacion "schedule-calendar/pkg/programacion"
)

// ListByFichaAndCoordination fetches the raw schedule wrappers for a ficha and coordinación.
func (r *implRepository) ListByFichaAndCoordination(ctx context.Context, opt repository.ListOptions) ([]repository.Wrapper, error) {
	start := time.Now()
	wrappers, err := r.client.FetchByFichaAndCoordination(ctx, opt.Ficha, opt.Coordinacion)
	metrics.UpstreamDuration.WithLabelValues(statusLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		r.l.Errorf(ctx, "programacion.ListByFichaAndCoordination: ficha=%s coordinacion=%q: %v", opt.Ficha, opt.Coordinacion, err)
		return nil, fmt.Errorf("list programaciones: %w", err)
	}

	out := make([]repository.Wrapper, len(wrappers))
	for i, w := range wrappers {
		out[i] = toWrapper(w)
	}

	r.l.Debugf(ctx, "programacion.ListByFichaAndCoordination: ficha=%s wrappers=%d", opt.Ficha, len(out))
	return out, nil
}

func toWrapper(w pkgProgramacion.Wrapper) repository.Wrapper {
	src := w.Events()
	events := make([]repository.RawEvent, len(src))
	for i, e := range src {
		events[i] = repository.RawEvent{
			Venue:        e.Sede,
			Description:  e.Descripcion,
			Room:         e.Ambiente,
			DateTime:     e.Fecha,
			StartTime:    e.HoraInicio,
			EndTime:      e.HoraFin,
			FichaID:      string(e.NumeroFicha),
			WorkshopName: e.NombreTaller,
			TrainerName:  e.NombreCapacitador,
		}
	}
	return repository.Wrapper{Events: events}
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *pkgProgramacion.StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	if errors.Is(err, pkgProgramacion.ErrUnexpectedShape) {
		return "bad_shape"
	}
	return "transport_error"
}
