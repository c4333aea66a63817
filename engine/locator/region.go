package locator

import "strings"

// regionCodes maps normalized region names to their short codes. Static
// configuration data: US states, DC, territories and Canadian provinces.
// Exported through RegionTable for enumeration in tests.
var regionCodes = map[string]string{
	"alabama":                   "AL",
	"alaska":                    "AK",
	"arizona":                   "AZ",
	"arkansas":                  "AR",
	"california":                "CA",
	"colorado":                  "CO",
	"connecticut":               "CT",
	"delaware":                  "DE",
	"florida":                   "FL",
	"georgia":                   "GA",
	"hawaii":                    "HI",
	"idaho":                     "ID",
	"illinois":                  "IL",
	"indiana":                   "IN",
	"iowa":                      "IA",
	"kansas":                    "KS",
	"kentucky":                  "KY",
	"louisiana":                 "LA",
	"maine":                     "ME",
	"maryland":                  "MD",
	"massachusetts":             "MA",
	"michigan":                  "MI",
	"minnesota":                 "MN",
	"mississippi":               "MS",
	"missouri":                  "MO",
	"montana":                   "MT",
	"nebraska":                  "NE",
	"nevada":                    "NV",
	"new hampshire":             "NH",
	"new jersey":                "NJ",
	"new mexico":                "NM",
	"new york":                  "NY",
	"north carolina":            "NC",
	"north dakota":              "ND",
	"ohio":                      "OH",
	"oklahoma":                  "OK",
	"oregon":                    "OR",
	"pennsylvania":              "PA",
	"rhode island":              "RI",
	"south carolina":            "SC",
	"south dakota":              "SD",
	"tennessee":                 "TN",
	"texas":                     "TX",
	"utah":                      "UT",
	"vermont":                   "VT",
	"virginia":                  "VA",
	"washington":                "WA",
	"west virginia":             "WV",
	"wisconsin":                 "WI",
	"wyoming":                   "WY",
	"american samoa":            "AS",
	"district of columbia":      "DC",
	"guam":                      "GU",
	"northern mariana islands":  "MP",
	"puerto rico":               "PR",
	"virgin islands":            "VI",
	"alberta":                   "AB",
	"british columbia":          "BC",
	"manitoba":                  "MB",
	"new brunswick":             "NB",
	"newfoundland and labrador": "NL",
	"northwest territories":     "NT",
	"nova scotia":               "NS",
	"nunavut":                   "NU",
	"ontario":                   "ON",
	"prince edward island":      "PE",
	"quebec":                    "QC",
	"saskatchewan":              "SK",
	"yukon":                     "YT",
}

// RegionTable returns a copy of the region name to code table.
func RegionTable() map[string]string {
	table := make(map[string]string, len(regionCodes))
	for name, code := range regionCodes {
		table[name] = code
	}
	return table
}

// NormalizeRegion converts a free-form region token into its short code.
// Two-character tokens are treated as already being a code and upper-cased.
// Longer tokens are lower-cased, hyphen/space-normalized and looked up in
// the table. Unknown regions pass through upper-cased so callers can still
// build a usable, if imperfect, URL. Never fails.
func NormalizeRegion(token string) string {
	token = strings.TrimSpace(token)
	if len(token) == 2 {
		return strings.ToUpper(token)
	}
	name := strings.ToLower(token)
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.Join(strings.Fields(name), " ")
	if code, ok := regionCodes[name]; ok {
		return code
	}
	return strings.ToUpper(token)
}
