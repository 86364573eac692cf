package programacion

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedShape = errors.New("unexpected programaciones payload shape")
	ErrMissingBaseURL  = errors.New("programaciones base URL is required")
)

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("programaciones API error %d: %s", e.Code, e.Body)
}
