package errors

import "net/http"

// HTTPError is an error that knows the HTTP status it should be reported with.
type HTTPError struct {
	StatusCode int
	Message    string
	// Fields maps a request field to its message.
	Fields map[string]string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewFieldError creates a 400 HTTPError for a single invalid field.
func NewFieldError(field, message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Fields:     map[string]string{field: message},
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
