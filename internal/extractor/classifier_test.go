package extractor

import (
	"testing"
	"time"

	"github.com/jdamcd/trip-map/internal/model"
)

func event(summary string, days int) model.CalendarEvent {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	ev := model.CalendarEvent{UID: "test", Summary: summary, Start: start}
	if days >= 0 {
		ev.End = start.AddDate(0, 0, days)
	}
	return ev
}

func TestIsTravelEvent_FlightKeyword(t *testing.T) {
	if !IsTravelEvent(event("Flight to JFK", 0)) {
		t.Error("expected flight keyword to classify as travel")
	}
}

func TestIsTravelEvent_HotelKeyword(t *testing.T) {
	if !IsTravelEvent(event("Marriott Hotel Rome", 3)) {
		t.Error("expected hotel keyword to classify as travel")
	}
}

func TestIsTravelEvent_TravelKeyword(t *testing.T) {
	if !IsTravelEvent(event("Trip to Japan", 5)) {
		t.Error("expected travel keyword to classify as travel")
	}
}

func TestIsTravelEvent_NonTravel(t *testing.T) {
	if IsTravelEvent(event("Team meeting", 0)) {
		t.Error("expected plain meeting to be non-travel")
	}
}

func TestIsTravelEvent_VirtualOverridesEverything(t *testing.T) {
	cases := []string{
		"Virtual meeting with Paris team",
		"Zoom call with Tokyo office",
		"Webinar: flying lessons",
	}
	for _, summary := range cases {
		if IsTravelEvent(event(summary, 5)) {
			t.Errorf("%q: virtual vocabulary should veto travel classification", summary)
		}
	}
}

func TestIsTravelEvent_AirportCode(t *testing.T) {
	ev := model.CalendarEvent{
		UID:         "test",
		Summary:     "Meeting",
		Description: "Departing from LHR terminal 5",
		Start:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if !IsTravelEvent(ev) {
		t.Error("expected airport code in description to classify as travel")
	}
}

func TestIsTravelEvent_FlightNumber(t *testing.T) {
	if !IsTravelEvent(event("BA175 to New York", 0)) {
		t.Error("expected known airline flight number to classify as travel")
	}
}

func TestIsTravelEvent_UnknownAirlineCode(t *testing.T) {
	if IsTravelEvent(event("XY456 reservation", 0)) {
		t.Error("expected unknown airline prefix to be ignored")
	}
}

func TestIsTravelEvent_FlightNumberOnlyInSummary(t *testing.T) {
	ev := model.CalendarEvent{
		UID:         "test",
		Summary:     "Local event",
		Description: "Reference: BA123",
		Start:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if IsTravelEvent(ev) {
		t.Error("flight numbers in the description must not classify as travel")
	}
}

func TestIsTravelEvent_MultiDayWithPlaceName(t *testing.T) {
	ev := event("Offsite in Lisbon", 3)
	if !IsTravelEvent(ev) {
		t.Error("expected multi-day event with city name to classify as travel")
	}
}

func TestIsTravelEvent_SingleDayPlaceNameAlone(t *testing.T) {
	if IsTravelEvent(event("Offsite in Lisbon", 0)) {
		t.Error("place name without multi-day span or keyword must not classify")
	}
}

func TestIsTravelEvent_NoEndDateIsNotMultiDay(t *testing.T) {
	if IsTravelEvent(event("Offsite in Lisbon", -1)) {
		t.Error("event without end date must not count as multi-day")
	}
}

func TestIsTravelEvent_StationName(t *testing.T) {
	if !IsTravelEvent(event("Eurostar from St Pancras", 3)) {
		t.Error("expected multi-day event with station name to classify as travel")
	}
}

func TestIsTravelEvent_DiacriticInsensitive(t *testing.T) {
	if !IsTravelEvent(event("Hôtel in Zürich", 2)) {
		t.Error("expected diacritics to be stripped before matching")
	}
}

func TestIsTravelEvent_LowercaseShortCodeIgnored(t *testing.T) {
	// French article "la" must not read as Los Angeles.
	if IsTravelEvent(event("Réunion à la maison", 5)) {
		t.Error("lowercase 'la' must not match the LA city code")
	}
}
