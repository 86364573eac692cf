package http

import (
	"errors"
	"net/http"

	"schedule-calendar/internal/schedule"
	pkgErrors "schedule-calendar/pkg/errors"
)

var errNoCalendar = errors.New("no schedule has been loaded")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vErr *schedule.ValidationError
	if errors.As(err, &vErr) {
		return pkgErrors.NewFieldError(string(vErr.Field), vErr.Err.Error())
	}

	switch {
	case errors.Is(err, schedule.ErrFetchFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, schedule.ErrFetchFailed.Error())
	case errors.Is(err, schedule.ErrInvalidDate):
		return pkgErrors.NewFieldError("date", schedule.ErrInvalidDate.Error())
	case errors.Is(err, schedule.ErrNothingToExport), errors.Is(err, errNoCalendar):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, schedule.ErrCalendarUnavailable.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
