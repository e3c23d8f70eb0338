// Package gstin provides GSTIN (Goods and Services Tax Identification Number)
// validation and state-code lookups.
//
// A GSTIN is 15 characters: 2-digit state code, 10-character PAN,
// 1-character entity number, the literal 'Z', and a check character.
package gstin

import (
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// stateNames maps GST state codes to state/UT names.
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"28": "Andhra Pradesh (old)",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

// Normalize trims whitespace and uppercases a GSTIN candidate.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsValid reports whether s is a structurally valid GSTIN with a known
// state code. Empty strings are not valid; callers treating GSTIN as
// optional should check for empty before validating.
func IsValid(s string) bool {
	s = Normalize(s)
	if len(s) != 15 || !pattern.MatchString(s) {
		return false
	}
	_, ok := stateNames[s[:2]]
	return ok
}

// StateCode returns the 2-digit state code of a GSTIN, or "" if the
// value is too short.
func StateCode(s string) string {
	s = Normalize(s)
	if len(s) < 2 {
		return ""
	}
	return s[:2]
}

// StateName returns the state/UT name for a GST state code, or "" for
// unknown codes.
func StateName(code string) string {
	return stateNames[code]
}

// SameState reports whether two GSTINs belong to the same state.
// Returns false if either state code is unknown.
func SameState(a, b string) bool {
	ca, cb := StateCode(a), StateCode(b)
	if ca == "" || cb == "" {
		return false
	}
	if _, ok := stateNames[ca]; !ok {
		return false
	}
	return ca == cb
}
