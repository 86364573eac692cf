package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used for every date string in the service.
const DateLayout = "2006-01-02"

// Parser resolves calendar dates in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty timezone means the process local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// MonthOf returns the year and month t falls in, seen from the parser's location.
func (p *Parser) MonthOf(t time.Time) (int, time.Month) {
	t = t.In(p.location)
	return t.Year(), t.Month()
}

// ParseDate parses a YYYY-MM-DD string as midnight in the parser's location.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DaysIn returns the number of days of month in year, leap years included.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateISO formats (year, month, day) as YYYY-MM-DD without any zone conversion.
func DateISO(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// TruncateDate keeps the date portion of an ISO datetime string: everything before the
// first literal "T". Strings without a "T" are returned unchanged.
func TruncateDate(datetime string) string {
	date, _, _ := strings.Cut(datetime, "T")
	return date
}
