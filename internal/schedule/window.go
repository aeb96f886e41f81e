package schedule

import "time"

// secondOfDay collapses a zoned instant to seconds since local midnight.
func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// CanCallAt reports whether the local clock-of-day falls inside the calling
// window. The check is date-independent and inclusive on both ends.
func CanCallAt(local time.Time) bool {
	s := secondOfDay(local)
	return s >= windowStartSec && s <= windowEndSec
}

// NextCallAt returns the next instant at or after local when a call is
// allowed: local itself when already inside the window, today's window start
// when before it, and tomorrow's window start when past it. AddDate performs
// real date arithmetic, so month and year boundaries roll over correctly.
func NextCallAt(local time.Time) time.Time {
	start := time.Date(local.Year(), local.Month(), local.Day(), callStartHour, callStartMinute, 0, 0, local.Location())

	s := secondOfDay(local)
	switch {
	case s < windowStartSec:
		return start
	case s > windowEndSec:
		return start.AddDate(0, 0, 1)
	default:
		return local
	}
}

// CallWindowAt translates the reference-zone dispatcher window into the
// target zone's clock-of-day, anchored on today's date in the reference
// zone. The pair is empty when the target zone is unresolved.
//
// Because the conversion is date-anchored, the end can read earlier than the
// start when the two zones sit on different dates (the target's window
// crosses its local midnight). That wraparound is inherent and deliberately
// not normalized away.
func CallWindowAt(targetIANA string, now time.Time) (string, string) {
	target, ok := LocationFor(targetIANA)
	if !ok {
		return "", ""
	}
	ref, ok := LocationFor(ReferenceZone)
	if !ok {
		return "", ""
	}

	nowRef := now.In(ref)
	start := time.Date(nowRef.Year(), nowRef.Month(), nowRef.Day(), referenceWindowStartHour, 0, 0, 0, ref)
	end := time.Date(nowRef.Year(), nowRef.Month(), nowRef.Day(), referenceWindowEndHour, 0, 0, 0, ref)

	return start.In(target).Format("15:04"), end.In(target).Format("15:04")
}
