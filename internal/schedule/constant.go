package schedule

// Log prefixes
const (
	LogPrefixLookup = "internal.schedule.Lookup"
	LogPrefixExport = "internal.schedule.ExportGoogle"
)

// Dialog copy
const (
	DialogTitleDay      = "Schedule for %s"
	DialogTitleNoEvents = "No schedule"
	DialogTextNoEvents  = "No events scheduled for this day."
	DialogTitleError    = "Error"
	DialogTextError     = "Could not fetch the schedule."
	DialogConfirm       = "Close"
)

// Validation limits
const (
	MaxFichaDigits = 7
)
