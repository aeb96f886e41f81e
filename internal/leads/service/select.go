package service

import (
	"context"

	"leadcall_backend/internal/leads/transport"
)

// Selection reasons reported to the caller.
const (
	reasonCallableNow = "At least one lead is callable now (07:00-18:59 local). Selected the highest priority."
	reasonEarliest    = "No lead is callable now. Selected the lead with the earliest next callable time (converted to the reference zone)."
	reasonNone        = "No lead had a resolvable timezone or next-call time. Check phone formatting and country_name."
)

// NextToCall runs the scheduling pass and applies the two-tier selection
// policy: the highest-priority lead callable right now; otherwise the lead
// whose next callable instant (on the reference-zone clock) comes first;
// otherwise nothing, with a diagnostic reason. A lead with an unresolved
// zone is never selected.
func (s *Service) NextToCall(ctx context.Context, leads []transport.LeadRequest) transport.NextToCallResponse {
	scored := s.scheduleAll(ctx, leads)
	sortByScore(scored)

	callableNow := 0
	for _, sl := range scored {
		if sl.canCall && sl.hasZone {
			callableNow++
		}
	}

	// Tier one: someone is callable now. The list is already in descending
	// score order, stable on input order.
	if callableNow > 0 {
		for _, sl := range scored {
			if sl.canCall && sl.hasZone {
				selected := sl.resp
				s.log.Selection(reasonCallableNow, len(scored), callableNow)
				return transport.NextToCallResponse{
					Selected:         &selected,
					Reason:           reasonCallableNow,
					TotalLeads:       len(scored),
					CallableNowCount: callableNow,
				}
			}
		}
	}

	// Tier two: earliest upcoming callable instant, ties broken by input
	// order.
	var best *scoredLead
	for i := range scored {
		sl := &scored[i]
		if !sl.hasZone || !sl.hasNext {
			continue
		}
		if best == nil ||
			sl.nextRef.Before(best.nextRef) ||
			(sl.nextRef.Equal(best.nextRef) && sl.index < best.index) {
			best = sl
		}
	}

	if best == nil {
		s.log.Selection(reasonNone, len(scored), 0)
		return transport.NextToCallResponse{
			Selected:   nil,
			Reason:     reasonNone,
			TotalLeads: len(scored),
		}
	}

	selected := best.resp
	s.log.Selection(reasonEarliest, len(scored), 0)
	return transport.NextToCallResponse{
		Selected:   &selected,
		Reason:     reasonEarliest,
		TotalLeads: len(scored),
	}
}
