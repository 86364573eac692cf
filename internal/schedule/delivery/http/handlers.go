package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"schedule-calendar/pkg/response"
)

// Lookup godoc
// @Summary     Look up a training schedule
// @Description Validates ficha and coordinación, fetches the schedule and returns the unique events with the current month grid.
// @Tags        Schedules
// @Accept      json
// @Produce     json
// @Param       body body lookupReq true "Lookup input"
// @Success     200  {object} lookupResp
// @Failure     400  {object} response.Resp "Bad Request - invalid field"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Bad Gateway - schedule API failed"
// @Router      /api/v1/schedules/lookup [POST]
func (h *handler) Lookup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLookupReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Lookup(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Lookup: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLookupResp(output))
}

// Days godoc
// @Summary     Events of one day
// @Description Returns the events of a lookup scheduled on the given date.
// @Tags        Schedules
// @Produce     json
// @Param       ficha        query string true "Ficha number"
// @Param       coordinacion query string true "Coordinación name"
// @Param       date         query string true "Date (YYYY-MM-DD)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - schedule API failed"
// @Router      /api/v1/schedules/days [GET]
func (h *handler) Days(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Day(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Day: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// ExportGoogle godoc
// @Summary     Export a schedule to Google Calendar
// @Description Creates one Google Calendar event per schedule entry, skipping entries already present.
// @Tags        Schedules
// @Accept      json
// @Produce     json
// @Param       body body exportGoogleReq true "Lookup input and optional calendar id"
// @Success     200 {object} exportGoogleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - nothing to export"
// @Failure     502 {object} response.Resp "Bad Gateway - schedule API failed"
// @Failure     503 {object} response.Resp "Service Unavailable - Google Calendar not configured"
// @Router      /api/v1/schedules/export/google [POST]
func (h *handler) ExportGoogle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportGoogleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportGoogle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportGoogle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExportGoogleResp(output, time.Now()))
}
