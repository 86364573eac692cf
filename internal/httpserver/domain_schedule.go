package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"schedule-calendar/internal/middleware"
	scheduleHTTP "schedule-calendar/internal/schedule/delivery/http"
	programacionRepo "schedule-calendar/internal/schedule/repository/programacion"
	scheduleUC "schedule-calendar/internal/schedule/usecase"
	"schedule-calendar/internal/schedule/widget"
)

// setupScheduleDomain initializes the schedule domain and registers its page and API routes.
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := programacionRepo.New(srv.programacionClient, srv.l)

	// 2. UseCase
	uc := scheduleUC.New(srv.l, repo, srv.calendarClient, srv.dateMath, srv.calendarID)

	// 3. HTTP Handler
	h := scheduleHTTP.New(srv.l, uc, widget.NewStore(srv.maxSessions, srv.sessionTTL))

	tmpl, err := scheduleHTTP.Templates()
	if err != nil {
		return fmt.Errorf("parse schedule templates: %w", err)
	}
	srv.gin.SetHTMLTemplate(tmpl)

	// 4. Routes: pages at / and the JSON API at /api/v1/schedules
	scheduleHTTP.RegisterPageRoutes(srv.gin, h, mw)
	scheduleHTTP.RegisterAPIRoutes(api, h, mw)

	if srv.calendarClient == nil {
		srv.l.Infof(ctx, "Schedule domain registered (Google Calendar export disabled)")
	} else {
		srv.l.Infof(ctx, "Schedule domain registered")
	}
	return nil
}
