package extractor

import (
	"sort"
	"strings"

	"github.com/jdamcd/trip-map/internal/geo"
	"github.com/jdamcd/trip-map/internal/model"
)

// ExtractCountries returns the country codes an event references, as a
// sorted slice. All matching strategies are applied and unioned: airport
// codes, country names, city names (with compound suppression and
// jurisdiction disambiguation), train stations, and a second pass over the
// location field alone so a sparse but explicit location is never missed.
// Codes outside the country register are dropped silently.
func ExtractCountries(ev model.CalendarEvent) []string {
	full := fullText(ev.Summary, ev.Description, ev.Location)

	found := make(map[string]struct{})
	for _, code := range airportCodes(full) {
		if cc, ok := geo.AirportCountry(code); ok {
			found[cc] = struct{}{}
		}
	}
	for cc := range placeCountries(full, true) {
		found[cc] = struct{}{}
	}
	if ev.Location != "" {
		for cc := range placeCountries(ev.Location, true) {
			found[cc] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for cc := range found {
		if _, ok := geo.CountryName(cc); ok {
			out = append(out, cc)
		}
	}
	sort.Strings(out)
	return out
}

// placeCountries matches country, city and station names against the text
// and returns the set of country codes. With disambiguate set, city and
// country matches go through compound suppression, and ambiguous city names
// qualified by a jurisdiction token are discarded.
func placeCountries(raw string, disambiguate bool) map[string]struct{} {
	text := normalize(raw)
	lower := strings.ToLower(text)

	found := make(map[string]struct{})

	for _, ct := range countryTerms {
		if !matchWord(lower, ct.term) {
			continue
		}
		if disambiguate {
			if compoundSuppressed(lower, ct.term) {
				continue
			}
			if re, ok := countrySuppressPatterns[ct.term]; ok && re.MatchString(lower) {
				continue
			}
		}
		found[ct.code] = struct{}{}
	}

	for name, cc := range geo.Cities() {
		if len(name) <= 2 {
			// Regional shorthand (LA, SF, DC) must appear uppercase in
			// the original text.
			if matchWord(text, strings.ToUpper(name)) {
				found[cc] = struct{}{}
			}
			continue
		}
		if !matchWord(lower, name) {
			continue
		}
		if disambiguate {
			if compoundSuppressed(lower, name) {
				continue
			}
			if re, ok := jurisdictionPatterns[name]; ok && re.MatchString(lower) {
				continue
			}
			if re, ok := jurisdictionAbbrevPatterns[name]; ok && re.MatchString(text) {
				continue
			}
		}
		found[cc] = struct{}{}
	}

	for name, cc := range geo.Stations() {
		if matchWord(lower, name) {
			found[cc] = struct{}{}
		}
	}

	return found
}

// compoundSuppressed reports whether a longer compound form of the name is
// present, in which case the short form must not fire on its own.
func compoundSuppressed(lower, name string) bool {
	for _, compound := range geo.CompoundForms(name) {
		if matchWord(lower, compound) {
			return true
		}
	}
	return false
}
