// Package model defines the core travel history data types.
package model

import "time"

// Source records how a visit entry was produced.
type Source string

const (
	// SourceCalendar marks entries inferred from calendar events.
	SourceCalendar Source = "calendar"
	// SourceManual marks entries the user added by hand.
	SourceManual Source = "manual"
)

// CalendarEvent is the uniform in-memory shape of a decoded calendar event.
// It is produced by the decoding layer (internal/ics) and never mutated by
// the extraction core. A zero End means the event has no end date.
type CalendarEvent struct {
	UID         string    `json:"uid"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"startDate"`
	End         time.Time `json:"endDate,omitempty"`
}

// VisitEntry is one date range of presence in a country, with provenance.
// Dates are ISO-8601 strings; EndDate, when set, is >= StartDate.
// EventTitle may be a semicolon-joined concatenation of merged event titles.
type VisitEntry struct {
	ID         string `json:"id"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	Source     Source `json:"source"`
	EventTitle string `json:"eventTitle,omitempty"`
}

// CountryVisit groups all visit entries for one country, keyed by its
// ISO 3166-1 alpha-2 code. Entries is non-empty while the visit exists;
// a caller that deletes the last entry must drop the whole visit.
type CountryVisit struct {
	ID          string       `json:"id"`
	CountryCode string       `json:"countryCode"`
	CountryName string       `json:"countryName"`
	Entries     []VisitEntry `json:"entries"`
}

// Start returns the entry's start date as a time, or the zero time if the
// stored string does not parse.
func (e VisitEntry) Start() time.Time {
	t, _ := time.Parse(time.RFC3339, e.StartDate)
	return t
}

// End returns the entry's end date, falling back to the start date when no
// end is recorded. Merge comparisons treat open-ended entries this way.
func (e VisitEntry) End() time.Time {
	if e.EndDate == "" {
		return e.Start()
	}
	t, _ := time.Parse(time.RFC3339, e.EndDate)
	return t
}
