// Package service implements the lead resolution, scheduling, scoring, and
// selection operations. Everything is request-scoped and stateless: leads
// are re-resolved on every call, nothing is cached, and leads within one
// batch are processed concurrently because no step mutates shared state.
package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"leadcall_backend/internal/leads/transport"
	"leadcall_backend/internal/schedule"
	"leadcall_backend/internal/timezone"
	"leadcall_backend/platform/country"
	"leadcall_backend/platform/logger"
	"leadcall_backend/platform/phone"
)

const (
	timeOfDayFormat = "15:04:05"
	dateTimeFormat  = "2006-01-02 15:04:05"
)

// Service exposes the four lead operations.
type Service struct {
	log *logger.Logger
	now func() time.Time
}

// New creates a new leads service using the wall clock.
func New(log *logger.Logger) *Service {
	return &Service{log: log, now: time.Now}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ResolveRaw normalizes and resolves every lead without scoring or
// filtering. Output order matches input order.
func (s *Service) ResolveRaw(ctx context.Context, leads []transport.LeadRequest) []transport.LeadRawResponse {
	out := make([]transport.LeadRawResponse, len(leads))

	g, _ := errgroup.WithContext(ctx)
	for i, lead := range leads {
		i, lead := i, lead
		g.Go(func() error {
			digits := phone.Digits(lead.Phone)
			res := timezone.Resolve(digits, lead.CountryName)

			iso2 := res.CountryISO2
			if iso2 == "" {
				iso2 = country.ISO2(lead.CountryName)
			}

			out[i] = transport.LeadRawResponse{
				LeadID:       lead.LeadID,
				PhoneInput:   lead.Phone,
				PhoneDigits:  digits,
				PhoneE164:    phone.E164(digits),
				CountryName:  lead.CountryName,
				CountryISO2:  iso2,
				TimezoneIANA: res.IANA,
				TzAmbiguous:  res.Ambiguous,
				TzSource:     string(res.Source),
				Meta:         lead.Meta,
			}
			s.log.Resolution(lead.LeadID, res.IANA, string(res.Source), string(res.Status), res.Ambiguous)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// ListScheduled resolves, schedules, and scores every lead, sorted by
// descending priority (stable on input order for ties).
func (s *Service) ListScheduled(ctx context.Context, leads []transport.LeadRequest) []transport.ScheduledLeadResponse {
	scored := s.scheduleAll(ctx, leads)
	sortByScore(scored)

	out := make([]transport.ScheduledLeadResponse, len(scored))
	for i, sl := range scored {
		out[i] = sl.resp
	}
	return out
}

// scoredLead pairs the wire view of a lead with the typed values the
// selection policy needs.
type scoredLead struct {
	resp    transport.ScheduledLeadResponse
	index   int // original input position, the stable tie-break
	hasZone bool
	canCall bool
	nextRef time.Time
	hasNext bool
}

func sortByScore(scored []scoredLead) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].resp.PriorityScore > scored[j].resp.PriorityScore
	})
}

// scheduleAll computes the full per-lead annotation for one batch against a
// single "now" so every lead in the batch sees the same instant.
func (s *Service) scheduleAll(ctx context.Context, leads []transport.LeadRequest) []scoredLead {
	now := s.now()
	nowRef, refOK := schedule.NowIn(schedule.ReferenceZone, now)

	scored := make([]scoredLead, len(leads))
	g, _ := errgroup.WithContext(ctx)
	for i, lead := range leads {
		i, lead := i, lead
		g.Go(func() error {
			scored[i] = s.scheduleOne(lead, i, now, nowRef, refOK)
			return nil
		})
	}
	_ = g.Wait()

	return scored
}

func (s *Service) scheduleOne(lead transport.LeadRequest, index int, now, nowRef time.Time, refOK bool) scoredLead {
	digits := phone.Digits(lead.Phone)
	res := timezone.Resolve(digits, lead.CountryName)

	sl := scoredLead{
		index: index,
		resp: transport.ScheduledLeadResponse{
			LeadID:       lead.LeadID,
			PhoneDigits:  digits,
			CountryName:  lead.CountryName,
			TimezoneIANA: res.IANA,
			TzAmbiguous:  res.Ambiguous,
		},
	}

	local, ok := schedule.NowIn(res.IANA, now)
	if !ok {
		// Unresolved zone: every derived time stays empty and the score is
		// zero.
		return sl
	}

	sl.hasZone = true
	sl.canCall = schedule.CanCallAt(local)
	sl.resp.LeadLocalTimeNow = local.Format(timeOfDayFormat)
	sl.resp.CanCallNow = sl.canCall

	next := schedule.NextCallAt(local)
	sl.resp.NextCallLeadLocal = next.Format(dateTimeFormat)

	if refOK {
		nextRef := next.In(nowRef.Location())
		sl.nextRef = nextRef
		sl.hasNext = true
		sl.resp.NextCallReference = nextRef.Format(dateTimeFormat)
	}

	switch {
	case sl.canCall:
		sl.resp.PriorityScore = schedule.ScoreCallable(local)
	case sl.hasNext:
		sl.resp.PriorityScore = schedule.ScoreUpcoming(sl.nextRef, nowRef)
	}

	return sl
}
