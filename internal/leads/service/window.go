package service

import (
	"leadcall_backend/internal/leads/transport"
	"leadcall_backend/internal/schedule"
	"leadcall_backend/internal/timezone"
	"leadcall_backend/platform/phone"
)

// CallWindow translates the dispatcher's reference-zone window into the
// lead's local clock-of-day. An unresolvable lead yields an empty pair.
func (s *Service) CallWindow(req transport.CallWindowRequest) transport.CallWindowResponse {
	digits := phone.Digits(req.Phone)
	res := timezone.Resolve(digits, req.CountryName)

	start, end := schedule.CallWindowAt(res.IANA, s.now())
	return transport.CallWindowResponse{StartTime: start, EndTime: end}
}

// CallWindowBatch runs CallWindow over a batch, preserving input order.
func (s *Service) CallWindowBatch(reqs []transport.CallWindowRequest) []transport.CallWindowResponse {
	out := make([]transport.CallWindowResponse, len(reqs))
	for i, req := range reqs {
		out[i] = s.CallWindow(req)
	}
	return out
}
