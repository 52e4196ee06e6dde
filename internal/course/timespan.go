package course

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Zone is the institution's civil timezone. Every timespan line on the
// catalog page is wall-clock time in this zone.
const Zone = "Europe/Berlin"

const (
	// prefixLen covers the weekday abbreviation and its separator ("Mo, ").
	// The prefix is discarded without checking it against the parsed date.
	prefixLen  = 4
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

var loadZone = sync.OnceValues(func() (*time.Location, error) {
	return time.LoadLocation(Zone)
})

// Interval is a validated start/end pair of absolute instants. Start is
// strictly before End; construct one through NewInterval.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval returns an Interval after checking that start lies strictly
// before end.
func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// ParseError reports a timespan line that could not be turned into an
// Interval.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing timespan %q: %s", e.Line, e.Reason)
}

// ParseTimespan parses one schedule line of the form
//
//	"Mo, 21.10.2019 10:00 - 13:00"
//
// into an Interval in the institution's zone.
//
// The weekday prefix is dropped unvalidated. The remainder must split on
// single spaces into exactly four tokens (date, start time, separator, end
// time); the separator token is read but ignored. The date is day.month.year
// with a zero-padded day/month and four-digit year, times are 24-hour HH:MM,
// and both times fall on the same date. The start must lie strictly before
// the end.
//
// Nonexistent spring-forward wall-clock times resolve with the pre-transition
// offset (the instant lands after the gap); ambiguous fall-back times resolve
// to the later instant. A line whose interval collapses under that resolution
// is rejected.
func ParseTimespan(line string) (Interval, error) {
	if len(line) < prefixLen {
		return Interval{}, &ParseError{Line: line, Reason: "line shorter than the weekday prefix"}
	}

	tokens := strings.Split(line[prefixLen:], " ")
	if len(tokens) != 4 {
		return Interval{}, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("expected 4 tokens after the weekday prefix, got %d", len(tokens)),
		}
	}

	day, err := time.Parse(dateLayout, tokens[0])
	if err != nil {
		return Interval{}, &ParseError{Line: line, Reason: fmt.Sprintf("invalid date %q", tokens[0])}
	}
	startClock, err := time.Parse(timeLayout, tokens[1])
	if err != nil {
		return Interval{}, &ParseError{Line: line, Reason: fmt.Sprintf("invalid start time %q", tokens[1])}
	}
	endClock, err := time.Parse(timeLayout, tokens[3])
	if err != nil {
		return Interval{}, &ParseError{Line: line, Reason: fmt.Sprintf("invalid end time %q", tokens[3])}
	}

	// Reject sessions that end on or before their own start while still on
	// the wall clock, before any zone resolution happens.
	startMinute := startClock.Hour()*60 + startClock.Minute()
	endMinute := endClock.Hour()*60 + endClock.Minute()
	if startMinute >= endMinute {
		return Interval{}, &ParseError{Line: line, Reason: "start time is not before end time"}
	}

	zone, err := loadZone()
	if err != nil {
		return Interval{}, fmt.Errorf("loading zone %s: %w", Zone, err)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour(), startClock.Minute(), 0, 0, zone)
	end := time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour(), endClock.Minute(), 0, 0, zone)

	iv, err := NewInterval(start, end)
	if err != nil {
		return Interval{}, &ParseError{Line: line, Reason: err.Error()}
	}
	return iv, nil
}
