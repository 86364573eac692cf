package programacion

import (
	"context"

	pkgLog "schedule-calendar/pkg/log"
	pkgProgramacion "schedule-calendar/pkg/programacion"
)

// Fetcher is the slice of the programaciones client this repository needs.
type Fetcher interface {
	FetchByFichaAndCoordination(ctx context.Context, ficha, coordinacion string) ([]pkgProgramacion.Wrapper, error)
}

type implRepository struct {
	client Fetcher
	l      pkgLog.Logger
}

// New creates a programaciones-backed repository.
func New(client Fetcher, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
