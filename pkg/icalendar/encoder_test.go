package icalendar_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"schedule-calendar/pkg/icalendar"
)

func TestEncode(t *testing.T) {
	stamp := time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2023, 2, 10, 8, 0, 0, 0, time.UTC)
	dayStart, dayEnd := icalendar.DayBounds(time.Date(2023, 2, 11, 15, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	err := icalendar.Encode(&buf, "Ficha 2558104", []icalendar.Event{
		{UID: "1@test", Summary: "Liderazgo", Location: "Sede Norte", Start: start, End: start.Add(2 * time.Hour)},
		{UID: "2@test", Summary: "Etica", Description: "Repaso", Start: dayStart, End: dayEnd, AllDay: true},
	}, stamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"PRODID:" + icalendar.ProductID,
		"X-WR-CALNAME:Ficha 2558104",
		"20230210T080000Z",
		"VALUE=DATE:20230211",
		"VALUE=DATE:20230212",
		"LOCATION:Sede Norte",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	if strings.Contains(out, "X-WR-CALNAME;") {
		t.Errorf("calendar name should carry no parameters:\n%s", out)
	}

	cal, err := ical.NewDecoder(strings.NewReader(out)).Decode()
	if err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if got := len(cal.Events()); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
}

func TestEncodeRequiresUID(t *testing.T) {
	var buf bytes.Buffer
	err := icalendar.Encode(&buf, "", []icalendar.Event{{Summary: "No UID"}}, time.Now())
	if err == nil {
		t.Errorf("expected missing UID error")
	}
}
