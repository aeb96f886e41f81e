package schedule

import "time"

// ScoreCallable ranks a currently callable lead by proximity to the local
// peak contact hour: one point lost per minute of distance from peak,
// floored at zero.
func ScoreCallable(local time.Time) int {
	peak := time.Date(local.Year(), local.Month(), local.Day(), peakHour, 0, 0, 0, local.Location())
	minutes := int(local.Sub(peak).Abs().Minutes())
	if minutes >= 600 {
		return 0
	}
	return 600 - minutes
}

// ScoreUpcoming ranks a not-yet-callable lead by how soon its next callable
// instant arrives, measured in minutes on the reference-zone clock: sooner
// is higher. The 10000 base intentionally overlaps the callable formula's
// range; see the selection policy for the guaranteed orderings.
func ScoreUpcoming(nextRef, nowRef time.Time) int {
	minutes := int(nextRef.Sub(nowRef).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	if minutes >= 10000 {
		return 0
	}
	return 10000 - minutes
}
