package geo

// countryNames is the country register: every code the extractor may emit
// and the display name used for whole-word matching and sorted output.
// Sovereign states plus the few territories the airport and city tables
// reference (HK, MO, TW, PR and several Caribbean and Pacific islands).
var countryNames = map[string]string{
	// Europe
	"AL": "Albania", "AD": "Andorra", "AT": "Austria", "BY": "Belarus",
	"BE": "Belgium", "BA": "Bosnia and Herzegovina", "BG": "Bulgaria",
	"HR": "Croatia", "CY": "Cyprus", "CZ": "Czech Republic", "DK": "Denmark",
	"EE": "Estonia", "FI": "Finland", "FR": "France", "DE": "Germany",
	"GR": "Greece", "HU": "Hungary", "IS": "Iceland", "IE": "Ireland",
	"IT": "Italy", "LV": "Latvia", "LI": "Liechtenstein", "LT": "Lithuania",
	"LU": "Luxembourg", "MT": "Malta", "MD": "Moldova", "MC": "Monaco",
	"ME": "Montenegro", "NL": "Netherlands", "MK": "North Macedonia",
	"NO": "Norway", "PL": "Poland", "PT": "Portugal", "RO": "Romania",
	"RU": "Russia", "SM": "San Marino", "RS": "Serbia", "SK": "Slovakia",
	"SI": "Slovenia", "ES": "Spain", "SE": "Sweden", "CH": "Switzerland",
	"UA": "Ukraine", "GB": "United Kingdom", "VA": "Vatican City",

	// Asia
	"AF": "Afghanistan", "AM": "Armenia", "AZ": "Azerbaijan", "BH": "Bahrain",
	"BD": "Bangladesh", "BT": "Bhutan", "BN": "Brunei", "KH": "Cambodia",
	"CN": "China", "GE": "Georgia", "HK": "Hong Kong", "IN": "India",
	"ID": "Indonesia", "IR": "Iran", "IQ": "Iraq", "IL": "Israel",
	"JP": "Japan", "JO": "Jordan", "KZ": "Kazakhstan", "KW": "Kuwait",
	"KG": "Kyrgyzstan", "LA": "Laos", "LB": "Lebanon", "MO": "Macau",
	"MY": "Malaysia", "MV": "Maldives", "MN": "Mongolia", "MM": "Myanmar",
	"NP": "Nepal", "KP": "North Korea", "OM": "Oman", "PK": "Pakistan",
	"PH": "Philippines", "QA": "Qatar", "SA": "Saudi Arabia",
	"SG": "Singapore", "KR": "South Korea", "LK": "Sri Lanka", "SY": "Syria",
	"TW": "Taiwan", "TJ": "Tajikistan", "TH": "Thailand", "TL": "Timor-Leste",
	"TR": "Turkey", "TM": "Turkmenistan", "AE": "United Arab Emirates",
	"UZ": "Uzbekistan", "VN": "Vietnam", "YE": "Yemen",

	// Africa
	"DZ": "Algeria", "AO": "Angola", "BJ": "Benin", "BW": "Botswana",
	"BF": "Burkina Faso", "BI": "Burundi", "CV": "Cabo Verde",
	"CM": "Cameroon", "CF": "Central African Republic", "TD": "Chad",
	"KM": "Comoros", "CG": "Congo", "CI": "Ivory Coast", "DJ": "Djibouti",
	"EG": "Egypt", "GQ": "Equatorial Guinea", "ER": "Eritrea",
	"SZ": "Eswatini", "ET": "Ethiopia", "GA": "Gabon", "GM": "Gambia",
	"GH": "Ghana", "GN": "Guinea", "GW": "Guinea-Bissau", "KE": "Kenya",
	"LS": "Lesotho", "LR": "Liberia", "LY": "Libya", "MG": "Madagascar",
	"MW": "Malawi", "ML": "Mali", "MR": "Mauritania", "MU": "Mauritius",
	"MA": "Morocco", "MZ": "Mozambique", "NA": "Namibia", "NE": "Niger",
	"NG": "Nigeria", "RW": "Rwanda", "ST": "Sao Tome and Principe",
	"SN": "Senegal", "SC": "Seychelles", "SL": "Sierra Leone",
	"SO": "Somalia", "ZA": "South Africa", "SS": "South Sudan",
	"SD": "Sudan", "TZ": "Tanzania", "TG": "Togo", "TN": "Tunisia",
	"UG": "Uganda", "ZM": "Zambia", "ZW": "Zimbabwe",

	// Americas
	"AG": "Antigua and Barbuda", "AR": "Argentina", "AW": "Aruba",
	"BS": "Bahamas", "BB": "Barbados", "BZ": "Belize", "BO": "Bolivia",
	"BR": "Brazil", "CA": "Canada", "CL": "Chile", "CO": "Colombia",
	"CR": "Costa Rica", "CU": "Cuba", "CW": "Curacao", "DM": "Dominica",
	"DO": "Dominican Republic", "EC": "Ecuador", "SV": "El Salvador",
	"GD": "Grenada", "GP": "Guadeloupe", "GT": "Guatemala", "GY": "Guyana",
	"HT": "Haiti", "HN": "Honduras", "JM": "Jamaica", "MQ": "Martinique",
	"MX": "Mexico", "NI": "Nicaragua", "PA": "Panama", "PY": "Paraguay",
	"PE": "Peru", "PR": "Puerto Rico", "KN": "Saint Kitts and Nevis",
	"LC": "Saint Lucia", "VC": "Saint Vincent and the Grenadines",
	"SX": "Sint Maarten", "SR": "Suriname", "TT": "Trinidad and Tobago",
	"US": "United States", "UY": "Uruguay", "VE": "Venezuela",

	// Oceania
	"AU": "Australia", "FJ": "Fiji", "KI": "Kiribati",
	"MH": "Marshall Islands", "FM": "Micronesia", "NR": "Nauru",
	"NC": "New Caledonia", "NZ": "New Zealand", "PW": "Palau",
	"PG": "Papua New Guinea", "PF": "French Polynesia", "WS": "Samoa",
	"SB": "Solomon Islands", "TO": "Tonga", "TV": "Tuvalu", "VU": "Vanuatu",
}
