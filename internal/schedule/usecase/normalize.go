package usecase

import (
	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule/repository"
	"schedule-calendar/pkg/datemath"
)

// Normalize flattens wrappers in order and keeps the first record of every raw
// (datetime, workshop) pair. Dates are truncated only after deduplication.
func Normalize(wrappers []repository.Wrapper) []model.ScheduleEvent {
	seen := make(map[string]struct{})
	events := make([]model.ScheduleEvent, 0)

	for _, w := range wrappers {
		for _, raw := range w.Events {
			key := raw.DateTime + "-" + raw.WorkshopName
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			events = append(events, model.ScheduleEvent{
				Venue:        raw.Venue,
				Description:  raw.Description,
				Room:         raw.Room,
				Date:         datemath.TruncateDate(raw.DateTime),
				StartTime:    raw.StartTime,
				EndTime:      raw.EndTime,
				FichaID:      raw.FichaID,
				WorkshopName: raw.WorkshopName,
				TrainerName:  raw.TrainerName,
			})
		}
	}
	return events
}

func countRaw(wrappers []repository.Wrapper) int {
	n := 0
	for _, w := range wrappers {
		n += len(w.Events)
	}
	return n
}
