package geo

// stationToCountry maps major train station names to country codes. These
// matter for rail-heavy itineraries where an event says "Eurostar from
// St Pancras" without naming a city the city table knows.
var stationToCountry = map[string]string{
	// United Kingdom
	"st pancras": "GB", "kings cross": "GB", "king's cross": "GB",
	"euston": "GB", "paddington": "GB", "waterloo": "GB",
	"victoria station": "GB", "liverpool street": "GB",
	"charing cross": "GB", "marylebone": "GB",

	// France
	"gare du nord": "FR", "gare de lyon": "FR", "gare de l'est": "FR",
	"montparnasse": "FR", "gare saint-lazare": "FR", "gare d'austerlitz": "FR",
	"part-dieu": "FR", "saint-charles": "FR",

	// Germany and Austria
	"hauptbahnhof": "DE", "berlin hbf": "DE", "munich hbf": "DE",
	"frankfurt hbf": "DE", "hamburg hbf": "DE", "wien hbf": "AT",

	// Benelux
	"amsterdam centraal": "NL", "rotterdam centraal": "NL",
	"brussels midi": "BE", "bruxelles-midi": "BE", "antwerpen-centraal": "BE",

	// Italy and Spain
	"termini": "IT", "milano centrale": "IT", "santa maria novella": "IT",
	"venezia santa lucia": "IT", "napoli centrale": "IT",
	"atocha": "ES", "chamartin": "ES", "barcelona sants": "ES",

	// Switzerland
	"zurich hb": "CH", "geneve-cornavin": "CH", "bern bahnhof": "CH",

	// United States
	"grand central": "US", "penn station": "US", "union station": "US",
	"south station": "US", "30th street station": "US",

	// Japan
	"tokyo station": "JP", "shinjuku station": "JP", "kyoto station": "JP",
	"shin-osaka": "JP", "shinagawa station": "JP",
}
