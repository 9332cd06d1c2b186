package ics

import (
	"strings"
	"testing"
	"time"
)

func calendarBody(t *testing.T, lines ...string) []byte {
	t.Helper()
	all := append([]string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//schedfix//EN"}, lines...)
	all = append(all, "END:VCALENDAR", "")
	return []byte(strings.Join(all, "\r\n"))
}

func TestInspect(t *testing.T) {
	body := calendarBody(t,
		"BEGIN:VEVENT",
		"UID:evt-1",
		"DTSTAMP:20220301T000000Z",
		"DTSTART:20220309T020000Z",
		"DTEND:20220309T040000Z",
		"SUMMARY:Opening Ceremony",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:evt-2",
		"DTSTAMP:20220301T000000Z",
		"DTSTART:20220305T180000Z",
		"SUMMARY:Embarkation",
		"END:VEVENT",
	)

	rep, err := Inspect(body)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if rep.Events != 2 {
		t.Errorf("Events = %d, want 2", rep.Events)
	}
	wantFirst := time.Date(2022, time.March, 5, 18, 0, 0, 0, time.UTC)
	wantLast := time.Date(2022, time.March, 9, 2, 0, 0, 0, time.UTC)
	if !rep.First.Equal(wantFirst) {
		t.Errorf("First = %v, want %v", rep.First, wantFirst)
	}
	if !rep.Last.Equal(wantLast) {
		t.Errorf("Last = %v, want %v", rep.Last, wantLast)
	}
}

func TestInspectEmptyBody(t *testing.T) {
	if _, err := Inspect(nil); err == nil {
		t.Fatal("Inspect(nil) succeeded")
	}
}

func TestInspectGarbage(t *testing.T) {
	if _, err := Inspect([]byte("this is not a calendar\r\n")); err == nil {
		t.Fatal("Inspect on non-calendar text succeeded")
	}
}
