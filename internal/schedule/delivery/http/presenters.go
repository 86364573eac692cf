package http

import (
	"fmt"
	"time"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/internal/schedule/widget"
	"schedule-calendar/pkg/response"
)

// --- Request DTOs ---

type lookupReq struct {
	Ficha        string `json:"ficha"        form:"ficha"`
	Coordinacion string `json:"coordinacion" form:"coordinacion"`
}

func (r lookupReq) toInput() schedule.LookupInput {
	return schedule.LookupInput{
		Ficha:        r.Ficha,
		Coordinacion: r.Coordinacion,
	}
}

// ---

type dayReq struct {
	lookupReq
	Date string `form:"date"`
}

func (r dayReq) toInput() schedule.DayInput {
	return schedule.DayInput{
		LookupInput: r.lookupReq.toInput(),
		Date:        r.Date,
	}
}

// ---

type exportGoogleReq struct {
	lookupReq
	CalendarID string `json:"calendar_id"`
}

func (r exportGoogleReq) toInput() schedule.ExportGoogleInput {
	return schedule.ExportGoogleInput{
		LookupInput: r.lookupReq.toInput(),
		CalendarID:  r.CalendarID,
	}
}

// --- Response DTOs ---

type lookupResp struct {
	Events []model.ScheduleEvent `json:"events"`
	Days   []model.CalendarDay   `json:"days"`
	Year   int                   `json:"year"`
	Month  int                   `json:"month"`
}

func (h *handler) newLookupResp(o schedule.LookupOutput) lookupResp {
	return lookupResp{
		Events: o.Events,
		Days:   o.Days,
		Year:   o.Year,
		Month:  int(o.Month),
	}
}

type dayResp struct {
	Date   string                `json:"date"`
	Events []model.ScheduleEvent `json:"events"`
}

func (h *handler) newDayResp(o schedule.DayOutput) dayResp {
	return dayResp{
		Date:   o.Date,
		Events: o.Events,
	}
}

type exportedEventResp struct {
	WorkshopName string `json:"workshop_name"`
	Date         string `json:"date"`
	Link         string `json:"link,omitempty"`
	Skipped      bool   `json:"skipped"`
}

type exportGoogleResp struct {
	Created    int                 `json:"created"`
	Events     []exportedEventResp `json:"events"`
	ExportedAt response.DateTime   `json:"exported_at"`
}

func (h *handler) newExportGoogleResp(o schedule.ExportGoogleOutput, at time.Time) exportGoogleResp {
	events := make([]exportedEventResp, 0, len(o.Events))
	for _, e := range o.Events {
		events = append(events, exportedEventResp{
			WorkshopName: e.WorkshopName,
			Date:         e.Date,
			Link:         e.Link,
			Skipped:      e.Skipped,
		})
	}
	return exportGoogleResp{
		Created:    o.Count,
		Events:     events,
		ExportedAt: response.DateTime(at),
	}
}

// --- Page view ---

type pageView struct {
	Form       model.FormState
	Visible    bool
	Stale      bool
	MonthLabel string
	Days       []model.CalendarDay
	CanExport  bool
	Dialog     *schedule.Dialog
}

func newPageView(s widget.State) pageView {
	v := pageView{
		Form:      s.Form,
		Visible:   s.Visible,
		Stale:     s.Stale,
		Days:      s.Days,
		CanExport: len(s.Events) > 0,
		Dialog:    s.Dialog,
	}
	if s.Visible {
		v.MonthLabel = fmt.Sprintf("%s %d", s.Month, s.Year)
	}
	return v
}
