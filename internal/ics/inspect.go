// Package ics gives the operator an after-the-fact look at the corrected
// output: the downstream upload path expects syntactically valid calendar
// text, so the tool parses its own result and reports what a consumer would
// see. The corrector itself never goes through this parser; its passthrough
// guarantee is byte-exact and a full iCalendar round trip would re-fold and
// re-order properties.
package ics

import (
	"bytes"
	"errors"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "github.com/jocosocial/schedfix/internal/log"
)

// Report summarizes a parsed calendar body.
type Report struct {
	// Events is the number of VEVENT components found.
	Events int
	// First and Last bound the event start times seen; zero when no event
	// carried a usable DTSTART.
	First time.Time
	Last  time.Time
}

// Inspect parses body as an iCalendar document and summarizes its events.
// Individual events without a readable start time are counted but do not
// contribute to the time range.
func Inspect(body []byte) (Report, error) {
	var rep Report

	if len(body) == 0 {
		return rep, errors.New("empty calendar body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return rep, err
	}

	for _, ev := range cal.Events() {
		rep.Events++

		start, err := ev.GetStartAt()
		if err != nil {
			appLog.Debug("event has no readable start time", "uid", eventUID(ev))
			continue
		}
		if rep.First.IsZero() || start.Before(rep.First) {
			rep.First = start
		}
		if rep.Last.IsZero() || start.After(rep.Last) {
			rep.Last = start
		}
	}

	return rep, nil
}

func eventUID(ev *ical.VEvent) string {
	p := ev.GetProperty(ical.ComponentPropertyUniqueId)
	if p == nil {
		return ""
	}
	return p.Value
}
