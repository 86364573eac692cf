package http

import (
	"github.com/gin-gonic/gin"

	"schedule-calendar/internal/middleware"
)

// RegisterPageRoutes maps the server-rendered calendar. Every page route runs inside a session.
func RegisterPageRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	page := r.Group("", mw.Session())
	{
		page.GET("/", h.Page)
		page.POST("/lookup", mw.RateLimit(), h.SubmitLookup)
		page.GET("/day/:date", h.OpenDay)
		page.GET("/export.ics", h.ExportICS)
	}
}

// RegisterAPIRoutes maps the JSON API under rg.
func RegisterAPIRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedules := rg.Group("/schedules", mw.RateLimit())
	{
		schedules.POST("/lookup", h.Lookup)
		schedules.GET("/days", h.Days)
		schedules.POST("/export/google", h.ExportGoogle)
	}
}
