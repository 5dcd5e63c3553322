// Package ics decodes iCalendar data into the uniform event shape the
// extraction core consumes.
package ics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/jdamcd/trip-map/internal/model"
)

// Parse decodes an ICS payload into calendar events. VEVENTs without a
// usable DTSTART are skipped, as are cancelled events, so the extraction
// core only ever sees well-formed, live events. Recurrence rules are not
// expanded; each VEVENT yields one event.
func Parse(r io.Reader) ([]model.CalendarEvent, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var events []model.CalendarEvent
	for _, ve := range cal.Events() {
		if cancelled(ve) {
			continue
		}
		start, err := ve.GetStartAt()
		if err != nil || start.IsZero() {
			continue
		}

		ev := model.CalendarEvent{
			UID:   propValue(ve, ical.ComponentPropertyUniqueId),
			Start: start,
		}
		if ev.UID == "" {
			ev.UID = uuid.NewString()
		}
		ev.Summary = propValue(ve, ical.ComponentPropertySummary)
		ev.Description = propValue(ve, ical.ComponentPropertyDescription)
		ev.Location = propValue(ve, ical.ComponentPropertyLocation)
		if end, err := ve.GetEndAt(); err == nil {
			ev.End = end
		}

		events = append(events, ev)
	}
	return events, nil
}

// ParseFile decodes the ICS file at path.
func ParseFile(path string) ([]model.CalendarEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ics: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// FilterRange keeps events whose start falls within [from, to]. A zero
// bound is open.
func FilterRange(events []model.CalendarEvent, from, to time.Time) []model.CalendarEvent {
	out := make([]model.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if !from.IsZero() && ev.Start.Before(from) {
			continue
		}
		if !to.IsZero() && ev.Start.After(to) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}

func cancelled(ve *ical.VEvent) bool {
	if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil {
		return strings.EqualFold(p.Value, "CANCELLED")
	}
	return false
}
