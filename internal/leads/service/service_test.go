package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"leadcall_backend/internal/leads/transport"
	"leadcall_backend/platform/logger"
)

// fixedService pins the clock to a known instant so zone arithmetic is
// deterministic.
func fixedService(t *testing.T, now time.Time) *Service {
	t.Helper()
	return New(logger.New("development")).WithClock(func() time.Time { return now })
}

// Mid-January, 12:00 UTC: San Francisco sits at 04:00 PST (before the
// calling window), Istanbul at 15:00 (inside it).
var midJanuaryNoonUTC = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func testLeads() []transport.LeadRequest {
	return []transport.LeadRequest{
		{LeadID: "us-1", Phone: "+1 (415) 555-2671", CountryName: "USA"},
		{LeadID: "tr-1", Phone: "90 212 555 12 34", CountryName: "Turkey"},
		{LeadID: "bad-1", Phone: "not a phone"},
	}
}

func TestResolveRawPreservesInputOrder(t *testing.T) {
	svc := fixedService(t, midJanuaryNoonUTC)
	out := svc.ResolveRaw(context.Background(), testLeads())

	if len(out) != 3 {
		t.Fatalf("got %d results, want 3", len(out))
	}
	if out[0].LeadID != "us-1" || out[1].LeadID != "tr-1" || out[2].LeadID != "bad-1" {
		t.Fatalf("raw output reordered: %s, %s, %s", out[0].LeadID, out[1].LeadID, out[2].LeadID)
	}

	us := out[0]
	if us.PhoneDigits != "14155552671" || us.PhoneE164 != "+14155552671" {
		t.Fatalf("US normalization = %q / %q", us.PhoneDigits, us.PhoneE164)
	}
	if us.TzSource != "number" || us.CountryISO2 != "US" {
		t.Fatalf("US resolution = source %q, iso2 %q", us.TzSource, us.CountryISO2)
	}

	bad := out[2]
	if bad.PhoneDigits != "" || bad.PhoneE164 != "" || bad.TimezoneIANA != "" {
		t.Fatalf("unresolvable lead leaked values: %+v", bad)
	}
	if bad.TzSource != "empty" {
		t.Fatalf("unresolvable lead source = %q, want empty", bad.TzSource)
	}
	if bad.CountryISO2 != "" {
		t.Fatalf("lead without a country name got iso2 %q, want empty", bad.CountryISO2)
	}
}

func TestResolveRawIdempotent(t *testing.T) {
	svc := fixedService(t, midJanuaryNoonUTC)
	first := svc.ResolveRaw(context.Background(), testLeads())
	second := svc.ResolveRaw(context.Background(), testLeads())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("raw resolution not idempotent: %+v vs %+v", first, second)
	}
}

func TestListScheduled(t *testing.T) {
	svc := fixedService(t, midJanuaryNoonUTC)
	out := svc.ListScheduled(context.Background(), testLeads())

	if len(out) != 3 {
		t.Fatalf("got %d results, want 3", len(out))
	}

	// The US lead is 3 hours from callable: 10000 - 180 = 9820. The Istanbul
	// lead is callable 120 minutes past peak: 600 - 120 = 480. The overlap of
	// the two formulas puts the not-callable lead first; that ordering is the
	// documented property of the scheme.
	if out[0].LeadID != "us-1" || out[0].PriorityScore != 9820 {
		t.Fatalf("first = %s score %d, want us-1 9820", out[0].LeadID, out[0].PriorityScore)
	}
	if out[1].LeadID != "tr-1" || out[1].PriorityScore != 480 {
		t.Fatalf("second = %s score %d, want tr-1 480", out[1].LeadID, out[1].PriorityScore)
	}
	if out[2].LeadID != "bad-1" || out[2].PriorityScore != 0 {
		t.Fatalf("third = %s score %d, want bad-1 0", out[2].LeadID, out[2].PriorityScore)
	}

	us := out[0]
	if us.CanCallNow {
		t.Fatal("04:00 local reported callable")
	}
	if us.LeadLocalTimeNow != "04:00:00" {
		t.Fatalf("US local now = %q", us.LeadLocalTimeNow)
	}
	if us.NextCallLeadLocal != "2025-01-15 07:00:00" {
		t.Fatalf("US next local = %q", us.NextCallLeadLocal)
	}
	if us.NextCallReference != "2025-01-15 18:00:00" {
		t.Fatalf("US next in reference zone = %q", us.NextCallReference)
	}

	tr := out[1]
	if !tr.CanCallNow {
		t.Fatal("15:00 local reported not callable")
	}
	if tr.LeadLocalTimeNow != "15:00:00" {
		t.Fatalf("TR local now = %q", tr.LeadLocalTimeNow)
	}
	// Already callable: the next-call instant is now itself.
	if tr.NextCallLeadLocal != "2025-01-15 15:00:00" {
		t.Fatalf("TR next local = %q", tr.NextCallLeadLocal)
	}

	bad := out[2]
	if bad.LeadLocalTimeNow != "" || bad.NextCallLeadLocal != "" || bad.NextCallReference != "" {
		t.Fatalf("unresolved lead carries time values: %+v", bad)
	}
	if bad.CanCallNow {
		t.Fatal("unresolved lead reported callable")
	}
}

func TestNextToCallPrefersCallableDespiteLowerScore(t *testing.T) {
	svc := fixedService(t, midJanuaryNoonUTC)
	out := svc.NextToCall(context.Background(), testLeads())

	if out.Selected == nil {
		t.Fatal("no lead selected")
	}
	if out.Selected.LeadID != "tr-1" {
		t.Fatalf("selected %s, want the callable tr-1", out.Selected.LeadID)
	}
	if out.Reason != reasonCallableNow {
		t.Fatalf("reason = %q", out.Reason)
	}
	if out.TotalLeads != 3 || out.CallableNowCount != 1 {
		t.Fatalf("counts = %d/%d, want 3/1", out.TotalLeads, out.CallableNowCount)
	}
}

func TestNextToCallEarliestUpcoming(t *testing.T) {
	// 03:00 UTC: Istanbul is at 06:00 (opens in one hour), London at 03:00
	// (opens in four). Nobody is callable.
	now := time.Date(2025, 1, 15, 3, 0, 0, 0, time.UTC)
	svc := fixedService(t, now)

	out := svc.NextToCall(context.Background(), []transport.LeadRequest{
		{LeadID: "uk-1", Phone: "+44 20 7946 0958"},
		{LeadID: "tr-1", Phone: "+90 212 555 12 34"},
	})

	if out.Selected == nil {
		t.Fatal("no lead selected")
	}
	if out.Selected.LeadID != "tr-1" {
		t.Fatalf("selected %s, want tr-1 (earliest next call)", out.Selected.LeadID)
	}
	if out.Reason != reasonEarliest {
		t.Fatalf("reason = %q", out.Reason)
	}
	if out.CallableNowCount != 0 {
		t.Fatalf("callable count = %d, want 0", out.CallableNowCount)
	}
}

func TestNextToCallNothingResolvable(t *testing.T) {
	svc := fixedService(t, midJanuaryNoonUTC)

	out := svc.NextToCall(context.Background(), []transport.LeadRequest{
		{LeadID: "x", Phone: "hello"},
		{LeadID: "y", Phone: "99999999999999999999999999"},
	})

	if out.Selected != nil {
		t.Fatalf("selected %+v, want nothing", out.Selected)
	}
	if out.Reason != reasonNone {
		t.Fatalf("reason = %q", out.Reason)
	}
	if out.TotalLeads != 2 || out.CallableNowCount != 0 {
		t.Fatalf("counts = %d/%d, want 2/0", out.TotalLeads, out.CallableNowCount)
	}
}

func TestCallWindow(t *testing.T) {
	svc := fixedService(t, midJanuaryNoonUTC)

	// Guatemala sits 9 hours behind the reference zone in January.
	got := svc.CallWindow(transport.CallWindowRequest{Phone: "+502 2375 1234"})
	if got.StartTime != "01:00" || got.EndTime != "13:00" {
		t.Fatalf("Guatemala window = %s-%s, want 01:00-13:00", got.StartTime, got.EndTime)
	}

	// Unresolvable input yields an empty pair, not an error.
	got = svc.CallWindow(transport.CallWindowRequest{Phone: "garbage"})
	if got.StartTime != "" || got.EndTime != "" {
		t.Fatalf("unresolved window = %s-%s, want empty", got.StartTime, got.EndTime)
	}
}

func TestCallWindowBatchPreservesOrder(t *testing.T) {
	svc := fixedService(t, midJanuaryNoonUTC)

	out := svc.CallWindowBatch([]transport.CallWindowRequest{
		{Phone: "+90 212 555 12 34"},
		{Phone: "garbage"},
	})

	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}
	// The reference zone maps onto itself unchanged.
	if out[0].StartTime != "10:00" || out[0].EndTime != "22:00" {
		t.Fatalf("Istanbul window = %s-%s, want 10:00-22:00", out[0].StartTime, out[0].EndTime)
	}
	if out[1].StartTime != "" || out[1].EndTime != "" {
		t.Fatalf("unresolved entry = %s-%s, want empty", out[1].StartTime, out[1].EndTime)
	}
}
