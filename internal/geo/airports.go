package geo

// airportToCountry maps IATA airport codes to ISO 3166-1 alpha-2 country
// codes. Covers major international airports.
var airportToCountry = map[string]string{
	// United States
	"JFK": "US", "LAX": "US", "ORD": "US", "DFW": "US", "DEN": "US",
	"SFO": "US", "SEA": "US", "LAS": "US", "MCO": "US", "EWR": "US",
	"MIA": "US", "PHX": "US", "IAH": "US", "BOS": "US", "MSP": "US",
	"DTW": "US", "PHL": "US", "ATL": "US", "LGA": "US", "FLL": "US",
	"BWI": "US", "SLC": "US", "SAN": "US", "DCA": "US", "IAD": "US",
	"TPA": "US", "PDX": "US", "HNL": "US", "AUS": "US", "DAL": "US",
	"MDW": "US", "STL": "US", "RDU": "US", "SJC": "US", "OAK": "US",
	"SMF": "US", "CLE": "US", "MCI": "US", "IND": "US", "CVG": "US",
	"PIT": "US", "CMH": "US",

	// Canada
	"YYZ": "CA", "YVR": "CA", "YUL": "CA", "YYC": "CA", "YEG": "CA",
	"YOW": "CA", "YHZ": "CA", "YWG": "CA", "YQB": "CA",

	// United Kingdom
	"LHR": "GB", "LGW": "GB", "STN": "GB", "LTN": "GB", "MAN": "GB",
	"EDI": "GB", "BHX": "GB", "GLA": "GB", "BRS": "GB", "LCY": "GB",
	"NCL": "GB", "BFS": "GB", "LPL": "GB", "EMA": "GB",

	// Germany
	"FRA": "DE", "MUC": "DE", "DUS": "DE", "TXL": "DE", "BER": "DE",
	"HAM": "DE", "CGN": "DE", "STR": "DE", "HAJ": "DE", "NUE": "DE",
	"LEJ": "DE",

	// France
	"CDG": "FR", "ORY": "FR", "NCE": "FR", "LYS": "FR", "MRS": "FR",
	"TLS": "FR", "BOD": "FR", "NTE": "FR", "BVA": "FR",

	// Spain
	"MAD": "ES", "BCN": "ES", "PMI": "ES", "AGP": "ES", "ALC": "ES",
	"VLC": "ES", "SVQ": "ES", "IBZ": "ES", "TFS": "ES", "LPA": "ES",
	"BIO": "ES", "GRX": "ES",

	// Italy
	"FCO": "IT", "MXP": "IT", "LIN": "IT", "VCE": "IT", "NAP": "IT",
	"BGY": "IT", "BLQ": "IT", "PSA": "IT", "FLR": "IT", "CTA": "IT",
	"PMO": "IT", "TRN": "IT",

	// Benelux
	"AMS": "NL", "EIN": "NL", "RTM": "NL", "BRU": "BE", "CRL": "BE",

	// Switzerland and Austria
	"ZRH": "CH", "GVA": "CH", "BSL": "CH", "VIE": "AT", "SZG": "AT",
	"INN": "AT",

	// Portugal and Ireland
	"LIS": "PT", "OPO": "PT", "FAO": "PT", "FNC": "PT",
	"DUB": "IE", "SNN": "IE", "ORK": "IE",

	// Greece and Turkey
	"ATH": "GR", "SKG": "GR", "HER": "GR", "RHO": "GR", "CFU": "GR",
	"JMK": "GR", "JTR": "GR",
	"IST": "TR", "SAW": "TR", "ESB": "TR", "AYT": "TR", "ADB": "TR",
	"DLM": "TR", "BJV": "TR",

	// Central and Eastern Europe
	"WAW": "PL", "KRK": "PL", "GDN": "PL", "WRO": "PL", "POZ": "PL",
	"KTW": "PL", "PRG": "CZ", "BRQ": "CZ", "BUD": "HU", "OTP": "RO",
	"CLJ": "RO", "SOF": "BG", "VAR": "BG", "BOJ": "BG", "ZAG": "HR",
	"SPU": "HR", "DBV": "HR", "BEG": "RS", "LJU": "SI", "BTS": "SK",

	// Nordics and Baltics
	"CPH": "DK", "ARN": "SE", "GOT": "SE", "OSL": "NO", "BGO": "NO",
	"TRD": "NO", "HEL": "FI", "TMP": "FI", "KEF": "IS", "RKV": "IS",
	"TLL": "EE", "RIX": "LV", "VNO": "LT",

	// Russia and Ukraine
	"SVO": "RU", "DME": "RU", "VKO": "RU", "LED": "RU",
	"KBP": "UA", "IEV": "UA", "ODS": "UA", "LWO": "UA",

	// Middle East
	"DXB": "AE", "AUH": "AE", "SHJ": "AE", "DOH": "QA", "BAH": "BH",
	"KWI": "KW", "MCT": "OM", "RUH": "SA", "JED": "SA", "DMM": "SA",
	"MED": "SA", "TLV": "IL", "AMM": "JO", "BEY": "LB", "BGW": "IQ",
	"IKA": "IR", "THR": "IR",

	// Africa
	"JNB": "ZA", "CPT": "ZA", "DUR": "ZA", "CAI": "EG", "HRG": "EG",
	"SSH": "EG", "LXR": "EG", "CMN": "MA", "RAK": "MA", "TUN": "TN",
	"ALG": "DZ", "NBO": "KE", "MBA": "KE", "ADD": "ET", "LOS": "NG",
	"ABV": "NG", "ACC": "GH", "DAR": "TZ", "ZNZ": "TZ", "JRO": "TZ",
	"MRU": "MU", "SEZ": "SC", "TNR": "MG", "DSS": "SN", "ABJ": "CI",

	// East Asia
	"PEK": "CN", "PKX": "CN", "PVG": "CN", "SHA": "CN", "CAN": "CN",
	"SZX": "CN", "CTU": "CN", "XIY": "CN", "HGH": "CN", "NKG": "CN",
	"WUH": "CN", "CKG": "CN", "KMG": "CN", "XMN": "CN",
	"NRT": "JP", "HND": "JP", "KIX": "JP", "NGO": "JP", "FUK": "JP",
	"CTS": "JP", "OKA": "JP",
	"ICN": "KR", "GMP": "KR", "PUS": "KR", "CJU": "KR",
	"TPE": "TW", "KHH": "TW", "RMQ": "TW",
	"HKG": "HK", "MFM": "MO", "ULN": "MN",

	// Southeast Asia
	"SIN": "SG", "KUL": "MY", "PEN": "MY", "LGK": "MY", "BKI": "MY",
	"KCH": "MY", "BKK": "TH", "DMK": "TH", "HKT": "TH", "CNX": "TH",
	"USM": "TH", "CGK": "ID", "DPS": "ID", "SUB": "ID", "JOG": "ID",
	"UPG": "ID", "MNL": "PH", "CEB": "PH", "DVO": "PH", "SGN": "VN",
	"HAN": "VN", "DAD": "VN", "CXR": "VN", "RGN": "MM", "PNH": "KH",
	"REP": "KH", "VTE": "LA", "LPQ": "LA", "BWN": "BN",

	// South Asia
	"DEL": "IN", "BOM": "IN", "BLR": "IN", "MAA": "IN", "CCU": "IN",
	"HYD": "IN", "COK": "IN", "GOI": "IN", "AMD": "IN", "PNQ": "IN",
	"GAU": "IN", "DAC": "BD", "CMB": "LK", "KTM": "NP", "PBH": "BT",
	"MLE": "MV", "KHI": "PK", "LHE": "PK", "ISB": "PK",

	// Central Asia
	"TSE": "KZ", "ALA": "KZ", "TAS": "UZ", "SKD": "UZ", "FRU": "KG",
	"DYU": "TJ", "ASB": "TM",

	// Oceania
	"SYD": "AU", "MEL": "AU", "BNE": "AU", "PER": "AU", "ADL": "AU",
	"OOL": "AU", "CNS": "AU", "CBR": "AU", "HBA": "AU", "DRW": "AU",
	"AKL": "NZ", "WLG": "NZ", "CHC": "NZ", "ZQN": "NZ",
	"NAN": "FJ", "SUV": "FJ", "APW": "WS", "TBU": "TO", "PPT": "PF",
	"NOU": "NC", "POM": "PG",

	// Central America and Caribbean
	"MEX": "MX", "CUN": "MX", "GDL": "MX", "MTY": "MX", "TIJ": "MX",
	"SJD": "MX", "PVR": "MX", "PTY": "PA", "SJO": "CR", "LIR": "CR",
	"SAL": "SV", "GUA": "GT", "TGU": "HN", "SAP": "HN", "MGA": "NI",
	"BZE": "BZ", "HAV": "CU", "VRA": "CU", "SJU": "PR", "SDQ": "DO",
	"PUJ": "DO", "KIN": "JM", "MBJ": "JM", "NAS": "BS", "FPO": "BS",
	"BGI": "BB", "POS": "TT", "AUA": "AW", "CUR": "CW", "SXM": "SX",
	"PTP": "GP", "FDF": "MQ",

	// South America
	"GRU": "BR", "GIG": "BR", "BSB": "BR", "CNF": "BR", "SSA": "BR",
	"REC": "BR", "POA": "BR", "CWB": "BR", "FOR": "BR", "MAO": "BR",
	"FLN": "BR", "EZE": "AR", "AEP": "AR", "COR": "AR", "MDZ": "AR",
	"IGR": "AR", "BRC": "AR", "USH": "AR", "SCL": "CL", "PMC": "CL",
	"PUQ": "CL", "IQQ": "CL", "LIM": "PE", "CUZ": "PE", "AQP": "PE",
	"BOG": "CO", "MDE": "CO", "CTG": "CO", "CLO": "CO", "UIO": "EC",
	"GYE": "EC", "GPS": "EC", "CCS": "VE", "VLN": "VE", "LPB": "BO",
	"VVI": "BO", "ASU": "PY", "MVD": "UY", "GEO": "GY", "PBM": "SR",
}
