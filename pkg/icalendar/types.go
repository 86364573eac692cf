package icalendar

import "time"

// Event is one VEVENT of an exported calendar.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

const (
	ProductID     = "-//schedule-calendar//Programacion Export//ES"
	dateLayout    = "20060102"
	calScale      = "GREGORIAN"
	calVersion    = "2.0"
	propCalName   = "X-WR-CALNAME"
	methodPublish = "PUBLISH"
)
