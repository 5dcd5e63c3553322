package geo

// airlineCodes is the allow-list of IATA airline designators accepted as
// flight-number prefixes (BA175, LH2042). Tokens with prefixes outside
// this set are treated as unrelated reference numbers.
var airlineCodes = map[string]bool{
	"AA": true, "AC": true, "AF": true, "AI": true, "AM": true,
	"AR": true, "AS": true, "AV": true, "AY": true, "AZ": true,
	"BA": true, "BR": true, "CA": true, "CI": true, "CM": true,
	"CX": true, "CZ": true, "DL": true, "EI": true, "EK": true,
	"ET": true, "EY": true, "FI": true, "FJ": true, "FR": true,
	"GA": true, "HA": true, "IB": true, "JL": true, "JQ": true,
	"KE": true, "KL": true, "KQ": true, "LA": true, "LH": true,
	"LO": true, "LX": true, "MH": true, "MS": true, "MU": true,
	"NH": true, "NZ": true, "OS": true, "OZ": true, "PR": true,
	"QF": true, "QR": true, "RJ": true, "SA": true, "SK": true,
	"SN": true, "SQ": true, "SU": true, "SV": true, "TG": true,
	"TK": true, "TP": true, "UA": true, "UL": true, "VA": true,
	"VN": true, "VS": true, "WN": true, "WS": true,
}
