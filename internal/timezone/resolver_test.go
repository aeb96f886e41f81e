package timezone

import (
	"reflect"
	"strings"
	"testing"
)

func TestResolveFromNumber(t *testing.T) {
	// A San Francisco number: the allocation pins a single US zone.
	r := Resolve("14155552671", "")
	if r.Source != SourceNumber {
		t.Fatalf("source = %q, want number", r.Source)
	}
	if r.CountryISO2 != "US" {
		t.Fatalf("country = %q, want US", r.CountryISO2)
	}
	if !strings.HasPrefix(r.IANA, "America/") {
		t.Fatalf("zone = %q, want a US zone", r.IANA)
	}
	if r.Ambiguous {
		t.Fatal("single-zone allocation flagged ambiguous")
	}
	if r.Status != StatusResolved {
		t.Fatalf("status = %q, want RESOLVED", r.Status)
	}
}

func TestResolveEmptyDigits(t *testing.T) {
	// Country name alone never drives resolution; empty digits are an
	// immediate empty outcome.
	for _, input := range []string{"", "no digits at all"} {
		r := Resolve(input, "Ivory Coast")
		if r.IANA != "" || r.Ambiguous || r.Source != SourceEmpty || r.CountryISO2 != "" {
			t.Fatalf("Resolve(%q, Ivory Coast) = %+v, want empty outcome", input, r)
		}
		if r.Status != StatusUnresolvedPhone {
			t.Fatalf("status = %q, want UNRESOLVED_PHONE", r.Status)
		}
	}
}

func TestResolveUnparseableDigits(t *testing.T) {
	r := Resolve("99999999999999999999999999", "Netherlands")
	if r.IANA != "" || r.Source != SourceEmpty {
		t.Fatalf("unparseable digits = %+v, want empty outcome", r)
	}
}

func TestResolveCountryFallbackSingleZone(t *testing.T) {
	// +800 universal freephone numbers parse but carry no zone allocation,
	// which forces the fallback path.
	r := Resolve("80012345678", "Netherlands")
	if r.Source != SourceCountryFallback {
		t.Fatalf("source = %q, want country_fallback", r.Source)
	}
	if r.IANA != "Europe/Amsterdam" || r.Ambiguous {
		t.Fatalf("got %+v, want unambiguous Europe/Amsterdam", r)
	}
	if r.CountryISO2 != "NL" {
		t.Fatalf("country = %q, want NL", r.CountryISO2)
	}
}

func TestResolveCountryFallbackPreferredZone(t *testing.T) {
	r := Resolve("80012345678", "United States")
	if r.Source != SourceCountryFallback {
		t.Fatalf("source = %q, want country_fallback", r.Source)
	}
	if r.IANA != "America/New_York" {
		t.Fatalf("zone = %q, want preferred America/New_York", r.IANA)
	}
	if !r.Ambiguous {
		t.Fatal("multi-zone country not flagged ambiguous")
	}
	if r.Status != StatusAmbiguousZone {
		t.Fatalf("status = %q, want AMBIGUOUS_ZONE", r.Status)
	}
}

func TestResolveCountryFallbackNoCountry(t *testing.T) {
	// No usable country name and a non-geographic region code: unresolved,
	// reported as a value.
	r := Resolve("80012345678", "")
	if r.IANA != "" || r.Source != SourceEmpty {
		t.Fatalf("got %+v, want empty outcome", r)
	}
	if r.Status != StatusUnresolvedZone {
		t.Fatalf("status = %q, want UNRESOLVED_ZONE", r.Status)
	}
}

func TestZonesForCountry(t *testing.T) {
	us := ZonesForCountry("US")
	if len(us) < 2 {
		t.Fatalf("US zones = %d, want several", len(us))
	}
	if us[0] != "America/New_York" {
		t.Fatalf("first US zone = %q, want America/New_York", us[0])
	}
	if got := ZonesForCountry("tr"); len(got) != 1 || got[0] != "Europe/Istanbul" {
		t.Fatalf("TR zones = %v", got)
	}
	if got := ZonesForCountry("001"); got != nil {
		t.Fatalf("non-geographic code returned %v", got)
	}
	if got := ZonesForCountry(""); got != nil {
		t.Fatalf("empty code returned %v", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	first := Resolve("14155552671", "USA")
	second := Resolve("14155552671", "USA")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated resolution diverged: %+v vs %+v", first, second)
	}
}
