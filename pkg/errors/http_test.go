package errors_test

import (
	"errors"
	"net/http"
	"testing"

	pkgErrors "schedule-calendar/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	t.Run("status and message", func(t *testing.T) {
		err := pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream down")
		if err.Error() != "upstream down" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if err.StatusCode != http.StatusBadGateway {
			t.Errorf("unexpected status %d", err.StatusCode)
		}
	})

	t.Run("field error", func(t *testing.T) {
		var target *pkgErrors.HTTPError
		var err error = pkgErrors.NewFieldError("ficha", "ficha must contain only digits")
		if !errors.As(err, &target) {
			t.Fatal("expected *HTTPError")
		}
		if target.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", target.StatusCode)
		}
		if target.Fields["ficha"] != "ficha must contain only digits" {
			t.Errorf("unexpected fields %v", target.Fields)
		}
	})
}
