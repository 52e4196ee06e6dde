package calendar

import (
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/mhellwig/vvcal/internal/course"
)

// ProductID identifies the exporter in generated calendars
const ProductID = "-//vvcal//course schedule export//DE"

// Reltype value used for the series links between sessions.
const relTypeChild = "CHILD"

// Options control details of the generated calendar
type Options struct {
	// LinkFirstEventToSelf keeps the self-referential RELATED-TO entry on the
	// series anchor, the first session. This mirrors the catalog's published
	// calendars; turning it off leaves the link on follow-up sessions only.
	LinkFirstEventToSelf bool
}

// DefaultOptions returns the options matching the catalog's published form
func DefaultOptions() Options {
	return Options{
		LinkFirstEventToSelf: true,
	}
}

// Build assembles the VCALENDAR document for one course. Every session becomes
// its own VEVENT; the series is linked through RELATED-TO entries pointing at
// the first session's ID.
func Build(c *course.Course, opts Options) (*ics.Calendar, error) {
	if len(c.Occurrences) == 0 {
		return nil, fmt.Errorf("refusing to build an empty calendar for %q", c.Name)
	}

	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	anchor := c.Occurrences[0].ID
	for i, occ := range c.Occurrences {
		event := cal.AddEvent(occ.ID)

		// DTSTAMP is pinned to the session start, not the generation time;
		// repeated runs over an unchanged schedule emit identical bytes.
		event.SetDtStampTime(occ.Interval.Start)
		event.SetStartAt(occ.Interval.Start)
		event.SetEndAt(occ.Interval.End)
		event.SetSummary(c.Name)

		if i == 0 && !opts.LinkFirstEventToSelf {
			continue
		}
		event.SetProperty(
			ics.ComponentProperty(ics.PropertyRelatedTo),
			anchor,
			&ics.KeyValues{Key: string(ics.ParameterReltype), Value: []string{relTypeChild}},
		)
	}

	return cal, nil
}

// Serialize renders the calendar as an iCalendar document. Line endings are
// pinned to CRLF; the library's own Serialize picks the platform newline.
func Serialize(cal *ics.Calendar) string {
	return cal.Serialize(ics.WithNewLine("\r\n"))
}
