package datemath

import "time"

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// Days returns the number of days in m.
func (m Month) Days() int {
	return DaysIn(m.Year, m.Month)
}

// Date returns the ISO date string of the given day of m.
func (m Month) Date(day int) string {
	return DateISO(m.Year, m.Month, day)
}
