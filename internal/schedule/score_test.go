package schedule

import (
	"testing"
	"time"
)

func TestScoreCallable(t *testing.T) {
	loc := mustLoc(t, "Europe/Istanbul")
	cases := []struct {
		h, m int
		want int
	}{
		{13, 0, 600},  // at peak
		{12, 0, 540},  // one hour early
		{14, 30, 510}, // ninety minutes late
		{7, 0, 240},   // window open, six hours from peak
		{18, 59, 241}, // window close
	}

	for _, c := range cases {
		local := time.Date(2025, 6, 15, c.h, c.m, 0, 0, loc)
		if got := ScoreCallable(local); got != c.want {
			t.Fatalf("ScoreCallable(%02d:%02d) = %d, want %d", c.h, c.m, got, c.want)
		}
	}
}

func TestScoreCallableNeverNegative(t *testing.T) {
	loc := mustLoc(t, "Europe/Istanbul")
	local := time.Date(2025, 6, 15, 23, 30, 0, 0, loc)
	if got := ScoreCallable(local); got != 0 {
		t.Fatalf("score past the 600-minute radius = %d, want 0", got)
	}
}

func TestScoreUpcoming(t *testing.T) {
	ref := mustLoc(t, ReferenceZone)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, ref)

	if got := ScoreUpcoming(now.Add(30*time.Minute), now); got != 9970 {
		t.Fatalf("30 minutes out = %d, want 9970", got)
	}
	if got := ScoreUpcoming(now, now); got != 10000 {
		t.Fatalf("due now = %d, want 10000", got)
	}
	// A next-call instant in the past clamps to the maximum, not above it.
	if got := ScoreUpcoming(now.Add(-5*time.Minute), now); got != 10000 {
		t.Fatalf("past instant = %d, want 10000", got)
	}
	if got := ScoreUpcoming(now.Add(8*24*time.Hour), now); got != 0 {
		t.Fatalf("eight days out = %d, want 0", got)
	}
}
