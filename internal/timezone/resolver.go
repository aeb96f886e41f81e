// Package timezone derives an IANA zone for a lead from its phone number,
// falling back to its stated country when the number carries no zone
// allocation. The number is the stronger signal: countries may span many
// zones, while a geographic number pins one down. Ambiguity is surfaced, not
// silently guessed, so downstream consumers can flag low-confidence leads.
package timezone

import (
	"slices"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"leadcall_backend/platform/country"
	"leadcall_backend/platform/phone"
)

// Source identifies which signal produced a resolution.
type Source string

const (
	// SourceNumber means the zone came from the number's geographic allocation.
	SourceNumber Source = "number"
	// SourceCountryFallback means the zone came from the country's zone list.
	SourceCountryFallback Source = "country_fallback"
	// SourceEmpty means no zone could be derived.
	SourceEmpty Source = "empty"
)

// Status is the diagnostic taxonomy for a resolution outcome. Statuses are
// data for logging and confidence handling, never errors.
type Status string

const (
	StatusResolved        Status = "RESOLVED"
	StatusAmbiguousZone   Status = "AMBIGUOUS_ZONE"
	StatusUnresolvedPhone Status = "UNRESOLVED_PHONE"
	StatusUnresolvedZone  Status = "UNRESOLVED_ZONE"
)

// unknownZone is the sentinel the phone metadata returns for numbers it
// cannot place geographically (VOIP and non-geographic ranges).
const unknownZone = "Etc/Unknown"

// Resolved is the outcome of a zone resolution. An empty IANA means
// unresolved; that is a valid value, not a failure, and implies Source ==
// SourceEmpty with every derived time absent downstream.
type Resolved struct {
	IANA        string
	Ambiguous   bool
	Source      Source
	CountryISO2 string
	Status      Status
}

// Resolve maps a digit string plus an optional country name to a zone. The
// digits are expected to start with a country calling code; there is no
// default region. Failures at any step degrade to an unresolved value
// instead of propagating an error, so batch callers never abort.
func Resolve(digits, countryName string) Resolved {
	digits = phone.Digits(digits)
	if digits == "" {
		return Resolved{Source: SourceEmpty, Status: StatusUnresolvedPhone}
	}

	num, err := phonenumbers.Parse("+"+digits, "")
	if err != nil {
		return Resolved{Source: SourceEmpty, Status: StatusUnresolvedPhone}
	}

	// Primary path: the number's own zone allocation.
	if zones := zonesForNumber(num); len(zones) > 0 {
		r := Resolved{
			IANA:        zones[0],
			Ambiguous:   len(zones) > 1,
			Source:      SourceNumber,
			CountryISO2: phonenumbers.GetRegionCodeForNumber(num),
			Status:      StatusResolved,
		}
		if r.Ambiguous {
			r.Status = StatusAmbiguousZone
		}
		return r
	}

	// Fallback path: stated country first, then the number's region code.
	iso2 := country.ISO2(countryName)
	if iso2 == "" {
		iso2 = phonenumbers.GetRegionCodeForNumber(num)
	}
	if iso2 == "" {
		return Resolved{Source: SourceEmpty, Status: StatusUnresolvedZone}
	}

	zones := ZonesForCountry(iso2)
	if len(zones) == 0 {
		return Resolved{Source: SourceEmpty, CountryISO2: iso2, Status: StatusUnresolvedZone}
	}
	if len(zones) == 1 {
		return Resolved{
			IANA:        zones[0],
			Source:      SourceCountryFallback,
			CountryISO2: iso2,
			Status:      StatusResolved,
		}
	}

	r := Resolved{
		IANA:        zones[0],
		Ambiguous:   true,
		Source:      SourceCountryFallback,
		CountryISO2: iso2,
		Status:      StatusAmbiguousZone,
	}
	if preferred, ok := preferredZone[strings.ToUpper(iso2)]; ok && slices.Contains(zones, preferred) {
		r.IANA = preferred
	}
	return r
}

// zonesForNumber returns the zones geographically tied to a parsed number,
// or nil when the metadata has no real allocation for it.
func zonesForNumber(num *phonenumbers.PhoneNumber) []string {
	zones, err := phonenumbers.GetTimezonesForNumber(num)
	if err != nil {
		return nil
	}
	if len(zones) == 0 || (len(zones) == 1 && zones[0] == unknownZone) {
		return nil
	}
	return zones
}
