package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-calendar/internal/middleware"
	"schedule-calendar/internal/schedule/repository"
	programacionRepo "schedule-calendar/internal/schedule/repository/programacion"
	"schedule-calendar/pkg/datemath"
	"schedule-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Schedule domain
	programacionClient programacionRepo.Fetcher
	calendarClient     repository.CalendarRepository
	dateMath           *datemath.Parser
	calendarID         string
	middlewareConfig   middleware.Config
	maxSessions        int
	sessionTTL         time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Schedule domain
	ProgramacionClient programacionRepo.Fetcher
	// CalendarClient is optional; nil disables the Google Calendar export.
	CalendarClient repository.CalendarRepository
	DateMath       *datemath.Parser
	CalendarID     string
	Middleware     middleware.Config
	MaxSessions    int
	SessionTTL     time.Duration
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		programacionClient: cfg.ProgramacionClient,
		calendarClient:     cfg.CalendarClient,
		dateMath:           cfg.DateMath,
		calendarID:         cfg.CalendarID,
		middlewareConfig:   cfg.Middleware,
		maxSessions:        cfg.MaxSessions,
		sessionTTL:         cfg.SessionTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.programacionClient == nil {
		return errors.New("programacion client is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	return nil
}
