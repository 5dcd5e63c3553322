// Package geo provides the static reference data used for travel inference:
// airport, city and train station lookups, the country register, airline
// designators and the continent assignment. All tables are immutable
// package-level maps built at init and safe for concurrent reads.
package geo

import "sort"

// Country pairs an ISO 3166-1 alpha-2 code with its display name.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountryName returns the display name for an alpha-2 code. The second
// return is false for codes outside the register.
func CountryName(code string) (string, bool) {
	name, ok := countryNames[code]
	return name, ok
}

// AirportCountry maps an IATA airport code to its country code.
func AirportCountry(code string) (string, bool) {
	cc, ok := airportToCountry[code]
	return cc, ok
}

// CityCountry maps a lowercase place name to its country code. Keys of
// length <= 2 are regional shorthand (LA, SF, DC) that callers must match
// case-sensitively against unmodified text.
func CityCountry(name string) (string, bool) {
	cc, ok := cityToCountry[name]
	return cc, ok
}

// StationCountry maps a lowercase train station name to its country code.
func StationCountry(name string) (string, bool) {
	cc, ok := stationToCountry[name]
	return cc, ok
}

// KnownAirline reports whether the designator is a recognized IATA airline
// code, used to validate flight-number tokens.
func KnownAirline(code string) bool {
	return airlineCodes[code]
}

// Continent returns the continent for a country code, or "" if unassigned.
func Continent(countryCode string) string {
	return countryToContinent[countryCode]
}

// Countries returns the full register sorted by code.
func Countries() []Country {
	out := make([]Country, 0, len(countryNames))
	for code, name := range countryNames {
		out = append(out, Country{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Cities returns the city lookup table. The returned map is shared; callers
// must treat it as read-only.
func Cities() map[string]string {
	return cityToCountry
}

// Stations returns the station lookup table, read-only like Cities.
func Stations() map[string]string {
	return stationToCountry
}

// CompoundForms returns the longer place names that suppress a short city
// name when present in the same text (e.g. "new york" suppresses "york").
// Returns nil for names without compound forms.
func CompoundForms(name string) []string {
	return compoundForms[name]
}

// JurisdictionTokens returns the disambiguating region tokens for a city
// name that collides with same-named places elsewhere (e.g. "paris" with
// "texas"). A city name immediately followed by one of these tokens must
// not be attributed to the internationally-famous destination. Two-letter
// tokens are postal abbreviations and match uppercase only.
func JurisdictionTokens(name string) []string {
	return jurisdictionTokens[name]
}

// StateConflictCities returns the U.S. city names that mark a country term
// as a state reference when they directly precede it ("Athens, Georgia").
// Returns nil for country terms without a state collision.
func StateConflictCities(term string) []string {
	return stateConflictCities[term]
}
