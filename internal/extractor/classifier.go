package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/jdamcd/trip-map/internal/geo"
	"github.com/jdamcd/trip-map/internal/model"
)

// Events that only happen on a screen. A hit here overrides every travel
// signal, so "Zoom call with Tokyo office" never becomes a visit.
var virtualKeywords = []string{
	"virtual", "remote", "zoom", "teams", "webinar", "webex",
	"google meet", "video call", "conference call", "skype", "hangouts",
}

var flightKeywords = []string{
	"flight", "flying", "fly to", "depart", "arrive", "airline",
	"airways", "boarding", "takeoff", "landing",
}

var hotelKeywords = []string{
	"hotel", "resort", "hostel", "airbnb", "booking", "check-in",
	"check in", "checkout", "check out", "accommodation", "stay at",
	"marriott", "hilton", "hyatt", "sheraton", "westin", "radisson",
	"holiday inn", "best western", "ibis", "novotel", "accor", "ihg",
}

var travelKeywords = []string{
	"trip", "travel", "vacation", "holiday", "visit", "tour",
	"excursion", "journey", "abroad",
}

// multiDayThreshold is the span above which an event counts as multi-day
// for the weakest classification signal.
const multiDayThreshold = 24 * time.Hour

// flightNumberPattern matches airline-style tokens such as BA175 or LH2042.
var flightNumberPattern = regexp.MustCompile(`\b([A-Z]{2,3})[0-9]{1,4}\b`)

// IsTravelEvent reports whether the event represents physical travel. It is
// a pure function of the event's summary, description and location; absence
// of a signal is simply "not travel", never an error.
//
// Signals are checked in a fixed order: the virtual-event vocabulary vetoes
// everything, then flight/hotel/travel vocabulary, airport codes and flight
// numbers each confirm travel, and finally a multi-day span combined with a
// recognizable place name.
func IsTravelEvent(ev model.CalendarEvent) bool {
	full := fullText(ev.Summary, ev.Description, ev.Location)
	lower := strings.ToLower(normalize(full))

	if matchAny(lower, virtualKeywords) {
		return false
	}
	if matchAny(lower, flightKeywords) || matchAny(lower, hotelKeywords) || matchAny(lower, travelKeywords) {
		return true
	}
	if len(airportCodes(full)) > 0 {
		return true
	}
	// Flight numbers are only trusted in the summary; descriptions and
	// locations are full of unrelated reference numbers.
	if hasFlightNumber(ev.Summary) {
		return true
	}
	return isMultiDay(ev) && hasPlaceName(full)
}

func hasFlightNumber(summary string) bool {
	for _, m := range flightNumberPattern.FindAllStringSubmatch(summary, -1) {
		if geo.KnownAirline(m[1]) {
			return true
		}
	}
	return false
}

func isMultiDay(ev model.CalendarEvent) bool {
	if ev.End.IsZero() {
		return false
	}
	return ev.End.Sub(ev.Start) > multiDayThreshold
}

// hasPlaceName reports whether any country, city or station name occurs in
// the text. Disambiguation is not applied here; it only gates extraction.
func hasPlaceName(text string) bool {
	return len(placeCountries(text, false)) > 0
}
