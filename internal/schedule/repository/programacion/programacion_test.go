package programacion_test

import (
	"context"
	"errors"
	"testing"

	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/internal/schedule/repository/programacion"
	pkgLog "schedule-calendar/pkg/log"
	pkgProgramacion "schedule-calendar/pkg/programacion"
)

type fakeFetcher struct {
	wrappers []pkgProgramacion.Wrapper
	err      error
	gotFicha string
	gotCoord string
}

func (f *fakeFetcher) FetchByFichaAndCoordination(ctx context.Context, ficha, coordinacion string) ([]pkgProgramacion.Wrapper, error) {
	f.gotFicha, f.gotCoord = ficha, coordinacion
	return f.wrappers, f.err
}

func TestListByFichaAndCoordination(t *testing.T) {
	t.Run("Maps wrappers in order", func(t *testing.T) {
		f := &fakeFetcher{wrappers: []pkgProgramacion.Wrapper{{Entries: []pkgProgramacion.Entry{
			{Key: "1", Event: pkgProgramacion.RawEvent{
				Sede: "Norte", Descripcion: "Intro", Ambiente: "A-1", Fecha: "2023-02-10T00:00:00Z",
				HoraInicio: "08:00", HoraFin: "10:00", NumeroFicha: "2558104",
				NombreTaller: "Liderazgo", NombreCapacitador: "Ana",
			}},
			{Key: "0", Event: pkgProgramacion.RawEvent{Fecha: "2023-02-11T00:00:00Z", NombreTaller: "Etica"}},
		}}}}

		repo := programacion.New(f, pkgLog.NewNop())
		out, err := repo.ListByFichaAndCoordination(context.Background(), repository.ListOptions{Ficha: "2558104", Coordinacion: "Gestion"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.gotFicha != "2558104" || f.gotCoord != "Gestion" {
			t.Errorf("unexpected call args: %q %q", f.gotFicha, f.gotCoord)
		}
		if len(out) != 1 || len(out[0].Events) != 2 {
			t.Fatalf("unexpected wrappers: %+v", out)
		}
		want := repository.RawEvent{
			Venue: "Norte", Description: "Intro", Room: "A-1", DateTime: "2023-02-10T00:00:00Z",
			StartTime: "08:00", EndTime: "10:00", FichaID: "2558104",
			WorkshopName: "Liderazgo", TrainerName: "Ana",
		}
		if out[0].Events[0] != want {
			t.Errorf("unexpected mapping: %+v", out[0].Events[0])
		}
		if out[0].Events[1].WorkshopName != "Etica" {
			t.Errorf("unexpected order: %+v", out[0].Events)
		}
	})

	t.Run("Propagates errors", func(t *testing.T) {
		f := &fakeFetcher{err: &pkgProgramacion.StatusError{Code: 503, Body: "down"}}
		repo := programacion.New(f, pkgLog.NewNop())
		_, err := repo.ListByFichaAndCoordination(context.Background(), repository.ListOptions{Ficha: "1", Coordinacion: "X"})
		var statusErr *pkgProgramacion.StatusError
		if !errors.As(err, &statusErr) {
			t.Errorf("expected wrapped StatusError, got %v", err)
		}
	})
}
