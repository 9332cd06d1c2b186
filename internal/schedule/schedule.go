// Package schedule repairs a calendar export whose start/end timestamps were
// recorded in the wrong time zone for a bounded range of events. The
// scheduling service that produced the export could not represent the
// venue's zone changing mid-event, so every DTSTART/DTEND inside the
// affected window is exactly one hour late.
package schedule

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	appLog "github.com/jocosocial/schedfix/internal/log"
)

// timestampLayout is the fixed DATE-TIME form used by the export: UTC with a
// literal 'T' separator and trailing 'Z'.
const timestampLayout = "20060102T150405Z"

// The known-bad window. Times recorded after windowStart (exclusive) up to
// windowEnd (inclusive) are one hour late and get correctionOffset
// subtracted. These are compiled in on purpose: the tool exists for one
// historical correction, not as a general shifter.
var (
	windowStart = time.Date(2022, time.March, 8, 6, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2022, time.March, 9, 6, 0, 0, 0, time.UTC)
)

const correctionOffset = time.Hour

// ErrInvalidEncoding reports that the input file is not valid UTF-8. It is
// fatal; no partial output is produced.
var ErrInvalidEncoding = errors.New("calendar file is not valid UTF-8")

// FileError wraps an open/read failure with the offending path.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading calendar file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Line is one logical calendar record, split at the first colon.
type Line struct {
	Key   string
	Value string
	// HasValue distinguishes "KEY:" (empty value) from a line with no
	// colon at all, where the whole text lands in Key.
	HasValue bool
}

// SplitLine splits a raw line into key and value at the first colon. A line
// without a colon becomes a key-only Line and is always passed through.
func SplitLine(raw string) Line {
	i := strings.IndexByte(raw, ':')
	if i < 0 {
		return Line{Key: raw}
	}
	return Line{Key: raw[:i], Value: raw[i+1:], HasValue: true}
}

// Raw reassembles the original text of the line.
func (l Line) Raw() string {
	if !l.HasValue {
		return l.Key
	}
	return l.Key + ":" + l.Value
}

// isEventTime reports whether the key carries an event start or end
// timestamp. Parameterized forms like "DTSTART;TZID=..." do not match; those
// values are not in the fixed UTC layout and must pass through.
func isEventTime(key string) bool {
	return key == "DTSTART" || key == "DTEND"
}

// CorrectLine applies the one-hour correction to a single raw line. Start and
// end lines whose value parses in the fixed layout and falls inside the
// known-bad window come back re-encoded one hour earlier; everything else —
// other keys, unparsable values, out-of-window times — comes back unchanged.
// Pure function of its input and the window constants.
func CorrectLine(raw string) string {
	line := SplitLine(raw)
	if !line.HasValue || !isEventTime(line.Key) {
		return raw
	}

	t, err := time.Parse(timestampLayout, line.Value)
	if err != nil {
		appLog.Debug("event time not in fixed layout, passing through", "key", line.Key, "value", line.Value)
		return raw
	}

	if !t.After(windowStart) || t.After(windowEnd) {
		appLog.Debug("event time outside correction window, passing through", "key", line.Key, "value", line.Value)
		return raw
	}

	fixed := t.Add(-correctionOffset)
	return line.Key + ":" + fixed.Format(timestampLayout)
}

// Fix reads the calendar file at path and returns the corrected text.
//
// The whole file is loaded up front; exports are small and the transform is
// single-pass. Input is split on newline boundaries (a trailing '\r' per
// line is stripped, so CRLF and LF inputs behave the same), empty lines are
// dropped, and every emitted line is CRLF-terminated as calendar consumers
// expect.
//
// Errors are fatal and produce no output: *FileError when the file cannot be
// read, ErrInvalidEncoding when its bytes are not UTF-8. Per-line anomalies
// are never errors; they are passthrough behavior in CorrectLine.
func Fix(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}

	var (
		b         strings.Builder
		total     int
		corrected int
	)
	for _, raw := range strings.Split(string(data), "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if raw == "" {
			continue
		}
		total++

		fixed := CorrectLine(raw)
		if fixed != raw {
			corrected++
		}
		b.WriteString(fixed)
		b.WriteString("\r\n")
	}

	appLog.Info("schedule fix completed", "path", path, "lines", total, "corrected", corrected)
	return b.String(), nil
}
