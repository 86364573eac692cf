package schedule

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the schedule package.
var (
	ErrFichaNotNumeric        = errors.New("ficha must contain only digits")
	ErrFichaTooLong           = errors.New("ficha must have at most 7 digits")
	ErrCoordinacionNotLetters = errors.New("coordinación may only contain letters")
	ErrFetchFailed            = errors.New("could not fetch the schedule")
	ErrInvalidDate            = errors.New("date must be formatted as YYYY-MM-DD")
	ErrCalendarUnavailable    = errors.New("google calendar export is not configured")
	ErrNothingToExport        = errors.New("no events to export")
)

// ValidationError reports which form field failed and why.
type ValidationError struct {
	Field Field
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
