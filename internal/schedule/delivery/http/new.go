package http

import (
	"embed"
	"html/template"

	"schedule-calendar/internal/schedule"
	"schedule-calendar/internal/schedule/widget"
	"schedule-calendar/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

type handler struct {
	l     log.Logger
	uc    schedule.UseCase
	store *widget.Store
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, store *widget.Store) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		store: store,
	}
}

// Templates parses the embedded page templates. The engine serving the page routes must
// install them with SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
