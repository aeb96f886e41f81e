// Package schedule implements the callability, next-call, call-window, and
// priority arithmetic for leads. Every function here is a pure function of a
// zone and an instant; callers inject "now", which keeps the package free of
// hidden state and the tests deterministic.
package schedule

import "time"

// LocationFor loads an IANA zone. The second result is false for an empty or
// unknown id; an unresolvable zone is a data outcome, not an error.
func LocationFor(iana string) (*time.Location, bool) {
	if iana == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(iana)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// NowIn expresses the instant now in the given zone.
func NowIn(iana string, now time.Time) (time.Time, bool) {
	loc, ok := LocationFor(iana)
	if !ok {
		return time.Time{}, false
	}
	return now.In(loc), true
}
