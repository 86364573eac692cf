package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedule-calendar/config"
	_ "schedule-calendar/docs" // Swagger docs
	"schedule-calendar/internal/httpserver"
	"schedule-calendar/internal/middleware"
	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/pkg/datemath"
	"schedule-calendar/pkg/gcalendar"
	"schedule-calendar/pkg/log"
	"schedule-calendar/pkg/programacion"
)

// @title       Schedule Calendar API
// @description Training schedule lookup by ficha and coordinación, with month calendar, iCalendar and Google Calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedule Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Schedule API URL: %s", cfg.ScheduleAPI.URL)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.GoogleCalendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("")
	}

	// 4. Programaciones API client
	programacionClient, err := programacion.NewClient(programacion.Config{
		BaseURL:     cfg.ScheduleAPI.URL,
		AccessToken: cfg.ScheduleAPI.AccessToken,
		Timeout:     cfg.ScheduleAPI.Timeout,
		RatePerSec:  cfg.ScheduleAPI.RatePerSec,
		Burst:       cfg.ScheduleAPI.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize schedule API client: ", err)
		return
	}

	// 5. Google Calendar client (optional)
	var calendarClient repository.CalendarRepository
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Info(ctx, "Google Calendar export disabled: google_calendar.credentials_path is empty")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		ProgramacionClient: programacionClient,
		CalendarClient:     calendarClient,
		DateMath:           dateMathParser,
		CalendarID:         cfg.GoogleCalendar.CalendarID,
		Middleware: middleware.Config{
			SessionCookieName: cfg.Session.CookieName,
			SessionTTL:        cfg.Session.TTL,
			SecureCookie:      cfg.Session.SecureCookie,
			RequestsPerMin:    cfg.RateLimit.RequestsPerMin,
		},
		MaxSessions: cfg.Session.MaxSessions,
		SessionTTL:  cfg.Session.TTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
