package datemath_test

import (
	"testing"
	"time"

	"schedule-calendar/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Bogota")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	p, err := datemath.NewParser("")
	if err != nil {
		t.Fatalf("unexpected error for local parser: %v", err)
	}
	if p.Location() != time.Local {
		t.Errorf("expected local location, got %v", p.Location())
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "January", year: 2023, month: time.January, want: 31},
		{name: "February leap", year: 2024, month: time.February, want: 29},
		{name: "February common", year: 2023, month: time.February, want: 28},
		{name: "February century", year: 1900, month: time.February, want: 28},
		{name: "February 400", year: 2000, month: time.February, want: 29},
		{name: "April", year: 2023, month: time.April, want: 30},
		{name: "December", year: 2023, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.DaysIn(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysIn(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
			m := datemath.Month{Year: tt.year, Month: tt.month}
			if m.Days() != tt.want {
				t.Errorf("Month.Days() = %d, want %d", m.Days(), tt.want)
			}
		})
	}
}

func TestDateISO(t *testing.T) {
	if got := datemath.DateISO(2023, time.February, 10); got != "2023-02-10" {
		t.Errorf("unexpected date: %s", got)
	}
	if got := (datemath.Month{Year: 987, Month: time.December}).Date(1); got != "0987-12-01" {
		t.Errorf("unexpected padded date: %s", got)
	}
}

func TestTruncateDate(t *testing.T) {
	tests := map[string]string{
		"2023-02-10T00:00:00.000Z":  "2023-02-10",
		"2023-02-10T15:04:05-05:00": "2023-02-10",
		"2023-02-10":                "2023-02-10",
		"":                          "",
	}
	for in, want := range tests {
		if got := datemath.TruncateDate(in); got != want {
			t.Errorf("TruncateDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParserMonthOfAndParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	y, m := parser.MonthOf(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC))
	if y != 2024 || m != time.February {
		t.Errorf("unexpected month: %d-%s", y, m)
	}

	d, err := parser.ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(parser.StartOfDay(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))) {
		t.Errorf("unexpected parsed date: %v", d)
	}

	if _, err := parser.ParseDate("2024-02-30"); err == nil {
		t.Errorf("expected error for impossible date")
	}
}
