package geo

// cityToCountry maps place names to country codes for location parsing.
// Keys are lowercase except that callers must match keys of length <= 2
// (LA, SF, DC) case-sensitively against the original text, so that common
// lowercase words in other languages (French "la") never fire.
var cityToCountry = map[string]string{
	// United States
	"new york": "US", "new mexico": "US", "nyc": "US", "los angeles": "US", "la": "US",
	"chicago": "US", "houston": "US", "phoenix": "US", "philadelphia": "US",
	"philly": "US", "san antonio": "US", "san diego": "US", "dallas": "US",
	"austin": "US", "seattle": "US", "denver": "US", "boston": "US",
	"las vegas": "US", "vegas": "US", "miami": "US", "atlanta": "US",
	"san francisco": "US", "sf": "US", "washington": "US", "dc": "US",
	"orlando": "US", "honolulu": "US", "portland": "US", "nashville": "US",

	// Canada
	"toronto": "CA", "montreal": "CA", "vancouver": "CA", "calgary": "CA",
	"ottawa": "CA", "edmonton": "CA", "quebec": "CA",

	// United Kingdom
	"london": "GB", "manchester": "GB", "birmingham": "GB", "edinburgh": "GB",
	"glasgow": "GB", "liverpool": "GB", "bristol": "GB", "leeds": "GB",
	"newcastle": "GB", "belfast": "GB", "cardiff": "GB", "oxford": "GB",
	"cambridge": "GB", "brighton": "GB", "bath": "GB", "york": "GB",

	// France
	"paris": "FR", "marseille": "FR", "lyon": "FR", "toulouse": "FR",
	"nice": "FR", "nantes": "FR", "strasbourg": "FR", "bordeaux": "FR",
	"lille": "FR", "cannes": "FR", "monaco": "MC",

	// Germany
	"berlin": "DE", "munich": "DE", "frankfurt": "DE", "hamburg": "DE",
	"cologne": "DE", "dusseldorf": "DE", "stuttgart": "DE", "dresden": "DE",
	"leipzig": "DE", "nuremberg": "DE",

	// Italy
	"rome": "IT", "milan": "IT", "naples": "IT", "turin": "IT",
	"florence": "IT", "venice": "IT", "bologna": "IT", "genoa": "IT",
	"palermo": "IT", "verona": "IT", "pisa": "IT", "siena": "IT",
	"amalfi": "IT", "capri": "IT",

	// Spain and Portugal
	"madrid": "ES", "barcelona": "ES", "valencia": "ES", "seville": "ES",
	"bilbao": "ES", "malaga": "ES", "palma": "ES", "mallorca": "ES",
	"ibiza": "ES", "tenerife": "ES", "granada": "ES", "san sebastian": "ES",
	"lisbon": "PT", "porto": "PT", "faro": "PT", "madeira": "PT",
	"funchal": "PT",

	// Benelux
	"amsterdam": "NL", "rotterdam": "NL", "hague": "NL", "utrecht": "NL",
	"eindhoven": "NL", "brussels": "BE", "antwerp": "BE", "bruges": "BE",
	"ghent": "BE",

	// Switzerland and Austria
	"zurich": "CH", "geneva": "CH", "basel": "CH", "bern": "CH",
	"lucerne": "CH", "interlaken": "CH", "zermatt": "CH",
	"vienna": "AT", "salzburg": "AT", "innsbruck": "AT", "graz": "AT",

	// Ireland
	"dublin": "IE", "cork": "IE", "galway": "IE",

	// Greece and Turkey
	"athens": "GR", "thessaloniki": "GR", "santorini": "GR", "mykonos": "GR",
	"crete": "GR", "rhodes": "GR", "corfu": "GR",
	"istanbul": "TR", "ankara": "TR", "antalya": "TR", "izmir": "TR",
	"bodrum": "TR", "cappadocia": "TR",

	// Nordics
	"copenhagen": "DK", "stockholm": "SE", "gothenburg": "SE", "oslo": "NO",
	"bergen": "NO", "helsinki": "FI", "reykjavik": "IS",

	// Central and Eastern Europe
	"prague": "CZ", "budapest": "HU", "warsaw": "PL", "krakow": "PL",
	"bucharest": "RO", "sofia": "BG", "zagreb": "HR", "split": "HR",
	"dubrovnik": "HR", "belgrade": "RS", "ljubljana": "SI",
	"bratislava": "SK", "tallinn": "EE", "riga": "LV", "vilnius": "LT",
	"moscow": "RU", "st petersburg": "RU", "saint petersburg": "RU",
	"kyiv": "UA", "kiev": "UA", "lviv": "UA", "odessa": "UA",

	// Middle East
	"dubai": "AE", "abu dhabi": "AE", "doha": "QA", "bahrain": "BH",
	"kuwait": "KW", "muscat": "OM", "riyadh": "SA", "jeddah": "SA",
	"tel aviv": "IL", "jerusalem": "IL", "amman": "JO", "petra": "JO",
	"beirut": "LB", "tehran": "IR",

	// Africa
	"cairo": "EG", "luxor": "EG", "aswan": "EG", "hurghada": "EG",
	"sharm el sheikh": "EG", "marrakech": "MA", "casablanca": "MA",
	"fez": "MA", "tangier": "MA", "tunis": "TN", "algiers": "DZ",
	"johannesburg": "ZA", "cape town": "ZA", "durban": "ZA",
	"nairobi": "KE", "mombasa": "KE", "addis ababa": "ET", "lagos": "NG",
	"accra": "GH", "dar es salaam": "TZ", "zanzibar": "TZ",
	"mauritius": "MU", "seychelles": "SC", "madagascar": "MG",

	// East Asia
	"tokyo": "JP", "osaka": "JP", "kyoto": "JP", "yokohama": "JP",
	"nagoya": "JP", "fukuoka": "JP", "sapporo": "JP", "hiroshima": "JP",
	"nara": "JP", "kobe": "JP",
	"beijing": "CN", "shanghai": "CN", "guangzhou": "CN", "shenzhen": "CN",
	"chengdu": "CN", "hangzhou": "CN", "xian": "CN", "xi'an": "CN",
	"guilin": "CN", "kunming": "CN", "hong kong": "HK", "macau": "MO",
	"seoul": "KR", "busan": "KR", "jeju": "KR", "incheon": "KR",
	"taipei": "TW", "kaohsiung": "TW",

	// Southeast Asia
	"singapore": "SG", "kuala lumpur": "MY", "penang": "MY",
	"langkawi": "MY", "bangkok": "TH", "phuket": "TH", "chiang mai": "TH",
	"krabi": "TH", "koh samui": "TH", "bali": "ID", "jakarta": "ID",
	"yogyakarta": "ID", "ubud": "ID", "manila": "PH", "cebu": "PH",
	"boracay": "PH", "palawan": "PH", "ho chi minh": "VN", "saigon": "VN",
	"hanoi": "VN", "da nang": "VN", "hoi an": "VN", "phnom penh": "KH",
	"siem reap": "KH", "angkor": "KH", "vientiane": "LA",
	"luang prabang": "LA", "yangon": "MM", "bagan": "MM",

	// South Asia
	"delhi": "IN", "mumbai": "IN", "bombay": "IN", "bangalore": "IN",
	"bengaluru": "IN", "chennai": "IN", "kolkata": "IN", "calcutta": "IN",
	"hyderabad": "IN", "goa": "IN", "jaipur": "IN", "agra": "IN",
	"varanasi": "IN", "kerala": "IN", "kathmandu": "NP", "colombo": "LK",
	"dhaka": "BD", "maldives": "MV", "male": "MV", "karachi": "PK",
	"lahore": "PK", "islamabad": "PK",

	// Oceania
	"sydney": "AU", "melbourne": "AU", "brisbane": "AU", "perth": "AU",
	"adelaide": "AU", "gold coast": "AU", "cairns": "AU", "darwin": "AU",
	"auckland": "NZ", "wellington": "NZ", "christchurch": "NZ",
	"queenstown": "NZ", "fiji": "FJ", "tahiti": "PF", "bora bora": "PF",

	// Central America and Caribbean
	"mexico city": "MX", "cancun": "MX", "playa del carmen": "MX",
	"tulum": "MX", "guadalajara": "MX", "puerto vallarta": "MX",
	"cabo": "MX", "los cabos": "MX", "panama city": "PA",
	"guatemala city": "GT", "havana": "CU", "santo domingo": "DO",
	"punta cana": "DO", "kingston": "JM", "montego bay": "JM",
	"nassau": "BS", "aruba": "AW", "san juan": "PR", "barbados": "BB",
	"curacao": "CW", "st maarten": "SX",

	// South America
	"sao paulo": "BR", "rio de janeiro": "BR", "rio": "BR",
	"brasilia": "BR", "salvador": "BR", "recife": "BR", "fortaleza": "BR",
	"buenos aires": "AR", "mendoza": "AR", "iguazu": "AR",
	"bariloche": "AR", "ushuaia": "AR", "patagonia": "AR",
	"santiago": "CL", "valparaiso": "CL", "easter island": "CL",
	"lima": "PE", "cusco": "PE", "machu picchu": "PE", "arequipa": "PE",
	"bogota": "CO", "medellin": "CO", "cartagena": "CO", "quito": "EC",
	"galapagos": "EC", "guayaquil": "EC", "caracas": "VE", "la paz": "BO",
	"uyuni": "BO", "asuncion": "PY", "montevideo": "UY",
}

// compoundForms suppresses a short place name when a longer compound form
// sharing its tail is present in the same text, so "New York" never also
// fires the Yorkshire "york". Applies to country names too ("South Sudan"
// must not add Sudan).
var compoundForms = map[string][]string{
	"york":    {"new york"},
	"mexico":  {"new mexico"},
	"sudan":   {"south sudan"},
	"guinea":  {"papua new guinea", "equatorial guinea", "guinea-bissau"},
	"samoa":   {"american samoa"},
	"ireland": {"northern ireland"},
}

// jurisdictionTokens disambiguates city names reused across countries,
// mostly European cities with U.S. namesakes. When the city name is
// immediately followed by one of these region tokens (optionally
// comma-separated), the famous destination's match is discarded.
// Two-letter tokens are postal abbreviations and only count when they
// appear uppercase, like the short city codes: "London, ON" is Ontario,
// "London on Friday" is not.
var jurisdictionTokens = map[string][]string{
	"paris":      {"texas", "tx", "tennessee", "tn", "kentucky", "ky", "ontario"},
	"dublin":     {"ohio", "oh", "california", "ca", "texas", "tx", "georgia", "ga"},
	"london":     {"ontario", "on", "kentucky", "ky", "ohio", "oh"},
	"athens":     {"georgia", "ga", "ohio", "oh", "alabama", "al", "texas", "tx"},
	"rome":       {"georgia", "ga", "new york", "ny"},
	"venice":     {"california", "ca", "florida", "fl"},
	"naples":     {"florida", "fl"},
	"florence":   {"alabama", "al", "kentucky", "ky", "south carolina", "sc", "oregon"},
	"manchester": {"new hampshire", "nh", "connecticut", "ct"},
	"birmingham": {"alabama", "al", "michigan", "mi"},
	"cambridge":  {"massachusetts", "ma", "maryland", "md"},
	"melbourne":  {"florida", "fl"},
	"moscow":     {"idaho", "id"},
	"vienna":     {"virginia", "va"},
	"berlin":     {"new hampshire", "nh", "connecticut", "ct"},
	"hamburg":    {"new york", "ny", "new jersey", "nj"},
	"valencia":   {"california", "ca"},
	"odessa":     {"texas", "tx"},
}

// stateConflictCities guards country names that double as U.S. state
// names. A country term directly preceded by one of these city names is a
// state reference: "Athens, Georgia" never reads as the country Georgia.
var stateConflictCities = map[string][]string{
	"georgia": {"athens", "atlanta", "savannah", "augusta", "macon", "columbus", "rome", "albany"},
}
