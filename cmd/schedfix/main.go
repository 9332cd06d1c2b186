// schedfix corrects the exported sailing schedule for the venue's mid-event
// time zone change: DTSTART/DTEND values inside the known-bad window are one
// hour late in the export and get shifted back. The corrected calendar goes
// to stdout, ready for the admin schedule upload; diagnostics go to stderr.
//
// Usage:
//
//	schedfix <path-to-calendar-file>
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jocosocial/schedfix/internal/ics"
	appLog "github.com/jocosocial/schedfix/internal/log"
	"github.com/jocosocial/schedfix/internal/schedule"
)

const usageText = `Usage: schedfix <path-to-calendar-file>

Reads a calendar (.ics) export, shifts event start/end times that fall in
the known misrecorded window back by one hour, and writes the corrected
calendar to stdout.`

func main() {
	if os.Getenv("SCHEDFIX_DEBUG") != "" {
		appLog.SetLevel(appLog.LevelDebug)
	}

	args := os.Args[1:]
	if !validArgs(args) {
		fmt.Println(usageText)
		os.Exit(1)
	}

	path := args[0]
	out, err := schedule.Fix(path)
	if err != nil {
		appLog.Error("schedule fix failed", err, "path", path)
		os.Exit(1)
	}

	if _, err := os.Stdout.WriteString(out); err != nil {
		appLog.Error("writing corrected calendar failed", err)
		os.Exit(1)
	}

	// Advisory only: the upload path wants parseable calendar text, so
	// report what a consumer would see. A fragment that doesn't parse as a
	// full calendar is still a successful fix.
	rep, err := ics.Inspect([]byte(out))
	if err != nil {
		appLog.Error("corrected output is not a parseable calendar", err, "path", path)
		return
	}
	appLog.Info("corrected calendar inspected",
		"events", rep.Events,
		"first_start", rep.First.Format(time.RFC3339),
		"last_start", rep.Last.Format(time.RFC3339),
	)
}

// validArgs enforces the CLI contract: exactly one positional argument, and
// anything that looks like a help request gets the usage text instead of a
// file read.
func validArgs(args []string) bool {
	if len(args) != 1 {
		return false
	}
	for _, a := range args {
		if helpRequested(a) {
			return false
		}
	}
	return true
}

func helpRequested(arg string) bool {
	lower := strings.ToLower(arg)
	return strings.HasPrefix(lower, "-h") || strings.HasPrefix(lower, "--h")
}
