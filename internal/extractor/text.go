// Package extractor infers country visits from calendar events: it
// classifies events as travel, extracts the countries they reference and
// consolidates the resulting date ranges into a per-country travel history.
package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jdamcd/trip-map/internal/geo"
)

// normalize strips combining marks so matching is diacritic-insensitive
// ("Zürich" matches "zurich"). Case is preserved for the caller.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// wordPatterns holds a compiled whole-word pattern per known term. Built
// once at init from the geo tables and the vocabulary lists; read-only
// afterwards, so concurrent extraction runs share it safely.
var wordPatterns map[string]*regexp.Regexp

// jurisdictionPatterns matches an ambiguous city name immediately followed
// by one of its disambiguating region tokens, optionally comma-separated.
// Spelled-out tokens match on lowered text; two-letter postal abbreviations
// get a separate pattern (jurisdictionAbbrevPatterns) that runs against the
// original casing, so "London, ON" disambiguates but "london on friday"
// does not.
var jurisdictionPatterns map[string]*regexp.Regexp

var jurisdictionAbbrevPatterns map[string]*regexp.Regexp

// countrySuppressPatterns matches a country term in a U.S. state position
// ("athens, georgia"), in which case the country match is discarded.
var countrySuppressPatterns map[string]*regexp.Regexp

// countryTerm pairs a country code with its lowercased match term.
type countryTerm struct {
	code string
	term string
}

var countryTerms []countryTerm

func compileWord(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
}

func init() {
	wordPatterns = make(map[string]*regexp.Regexp)
	add := func(term string) {
		if _, ok := wordPatterns[term]; !ok {
			wordPatterns[term] = compileWord(term)
		}
	}

	for _, vocab := range [][]string{virtualKeywords, flightKeywords, hotelKeywords, travelKeywords} {
		for _, term := range vocab {
			add(term)
		}
	}

	for _, c := range geo.Countries() {
		term := strings.ToLower(normalize(c.Name))
		countryTerms = append(countryTerms, countryTerm{code: c.Code, term: term})
		add(term)
	}
	for name := range geo.Cities() {
		if len(name) <= 2 {
			// Short codes match case-sensitively against unmodified text.
			add(strings.ToUpper(name))
		} else {
			add(name)
		}
		for _, compound := range geo.CompoundForms(name) {
			add(compound)
		}
	}
	for name := range geo.Stations() {
		add(name)
	}

	jurisdictionPatterns = make(map[string]*regexp.Regexp)
	jurisdictionAbbrevPatterns = make(map[string]*regexp.Regexp)
	for name := range geo.Cities() {
		var words, abbrevs []string
		for _, tok := range geo.JurisdictionTokens(name) {
			if len(tok) == 2 {
				abbrevs = append(abbrevs, strings.ToUpper(tok))
			} else {
				words = append(words, regexp.QuoteMeta(tok))
			}
		}
		if len(words) > 0 {
			jurisdictionPatterns[name] = regexp.MustCompile(
				`\b` + regexp.QuoteMeta(name) + `[\s,]+(?:` + strings.Join(words, `|`) + `)\b`)
		}
		if len(abbrevs) > 0 {
			jurisdictionAbbrevPatterns[name] = regexp.MustCompile(
				`\b(?i:` + regexp.QuoteMeta(name) + `)[\s,]+(?:` + strings.Join(abbrevs, `|`) + `)\b`)
		}
	}

	countrySuppressPatterns = make(map[string]*regexp.Regexp)
	for _, ct := range countryTerms {
		cities := geo.StateConflictCities(ct.term)
		if len(cities) == 0 {
			continue
		}
		quoted := make([]string, len(cities))
		for i, city := range cities {
			quoted[i] = regexp.QuoteMeta(city)
		}
		countrySuppressPatterns[ct.term] = regexp.MustCompile(
			`\b(?:` + strings.Join(quoted, `|`) + `)[\s,]+` + regexp.QuoteMeta(ct.term) + `\b`)
	}
}

// matchWord reports whether term occurs as a whole word in text. The
// caller is responsible for normalizing and lowercasing text to match the
// term's case convention.
func matchWord(text, term string) bool {
	if re, ok := wordPatterns[term]; ok {
		return re.MatchString(text)
	}
	return compileWord(term).MatchString(text)
}

func matchAny(text string, terms []string) bool {
	for _, term := range terms {
		if matchWord(text, term) {
			return true
		}
	}
	return false
}

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// airportCodes returns the known IATA codes appearing in text as isolated
// three-letter uppercase tokens. Uppercase-only by construction, so prose
// words never collide with airport codes.
func airportCodes(text string) []string {
	var codes []string
	for _, tok := range tokenPattern.FindAllString(text, -1) {
		if len(tok) != 3 || tok != strings.ToUpper(tok) {
			continue
		}
		if strings.ContainsFunc(tok, unicode.IsDigit) {
			continue
		}
		if _, ok := geo.AirportCountry(tok); ok {
			codes = append(codes, tok)
		}
	}
	return codes
}

// fullText concatenates the searchable fields of an event.
func fullText(summary, description, location string) string {
	return summary + " " + description + " " + location
}
