package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"schedule-calendar/internal/middleware"
	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule/widget"
	"schedule-calendar/pkg/metrics"
	"schedule-calendar/pkg/response"
)

const (
	pageTemplate   = "page"
	icsContentType = "text/calendar; charset=utf-8"
)

// Page renders the form, the calendar of the last lookup and any pending dialog.
func (h *handler) Page(c *gin.Context) {
	w := h.store.GetOrCreate(middleware.SessionID(c))
	c.HTML(http.StatusOK, pageTemplate, newPageView(w.SnapshotAndDismiss()))
}

// SubmitLookup validates the form, fetches the schedule and redirects back to the page.
func (h *handler) SubmitLookup(c *gin.Context) {
	ctx := c.Request.Context()
	w := h.store.GetOrCreate(middleware.SessionID(c))

	req, err := h.processLookupForm(c)
	if err != nil {
		h.l.Warnf(ctx, "processLookupForm: %v", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	ticket, err := w.Submit(req.toInput(), h.uc.Validate)
	if err != nil {
		metrics.ScheduleLookups.WithLabelValues(metrics.OutcomeValidationError).Inc()
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	output, err := h.uc.Lookup(ctx, ticket.Input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Lookup: %v", err)
		err = w.Fail(ticket, h.uc.FetchErrorDialog())
	} else {
		err = w.Complete(ticket, output)
	}
	if errors.Is(err, widget.ErrSuperseded) {
		h.l.Infof(ctx, "lookup generation %d superseded by a newer submission", ticket.Generation)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// OpenDay renders the page with the dialog of one calendar day.
func (h *handler) OpenDay(c *gin.Context) {
	w, ok := h.store.Get(middleware.SessionID(c))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	date := c.Param("date")
	state := w.SnapshotAndDismiss()
	if state.Dialog != nil {
		// A pending fetch error is shown before any day dialog.
		c.HTML(http.StatusOK, pageTemplate, newPageView(state))
		return
	}
	if !state.Visible || !slices.ContainsFunc(state.Days, func(d model.CalendarDay) bool { return d.DateISO == date }) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	dialog := h.uc.DayDialog(date, state.Events)
	state.Dialog = &dialog
	c.HTML(http.StatusOK, pageTemplate, newPageView(state))
}

// ExportICS downloads the displayed events as an iCalendar file.
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	w, ok := h.store.Get(middleware.SessionID(c))
	if !ok {
		response.Error(c, h.mapError(errNoCalendar), nil)
		return
	}
	state := w.Snapshot()
	if !state.Visible {
		response.Error(c, h.mapError(errNoCalendar), nil)
		return
	}

	var buf bytes.Buffer
	name := fmt.Sprintf("Ficha %s - %s", state.Query.Ficha, state.Query.Coordinacion)
	if err := h.uc.WriteICS(&buf, name, state.Events); err != nil {
		h.l.Warnf(ctx, "uc.WriteICS: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule-%s.ics"`, state.Query.Ficha))
	c.Data(http.StatusOK, icsContentType, buf.Bytes())
}
