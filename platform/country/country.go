// Package country resolves free-text country names to ISO 3166-1 alpha-2
// codes. This is part of the platform layer and contains no business logic.
package country

import (
	"strings"

	"github.com/biter777/countries"

	"leadcall_backend/platform/sanitize"
)

// aliases covers colloquial and shorthand names the canonical standard does
// not list under that spelling. Checked before the canonical lookup.
var aliases = map[string]string{
	"ivory coast":    "CI",
	"cote d'ivoire":  "CI",
	"united states":  "US",
	"usa":            "US",
	"united kingdom": "GB",
	"uk":             "GB",
	"russia":         "RU",
}

// ISO2 maps a free-text country name to its alpha-2 code. An unknown name
// yields ""; resolution failure is a data outcome, never an error.
func ISO2(name string) string {
	cleaned := sanitize.Name(name)
	if cleaned == "" {
		return ""
	}

	if iso2, ok := aliases[strings.ToLower(cleaned)]; ok {
		return iso2
	}

	if code := countries.ByName(cleaned); code != countries.Unknown {
		return code.Alpha2()
	}
	return ""
}
