// Package transport defines the wire DTOs for the leads API.
//
// All time values are fixed-width clock strings (HH:MM:SS,
// YYYY-MM-DD HH:MM:SS, or HH:MM); an absent value is an empty string, never
// null, so output types stay uniform.
package transport

import "encoding/json"

// LeadRequest is one lead record in a request body. Meta is opaque attached
// data: passed through unexamined in raw-resolution output, dropped in
// scheduling output.
type LeadRequest struct {
	LeadID      string          `json:"lead_id"`
	Phone       string          `json:"phone_e164_or_digits" validate:"required"`
	CountryName string          `json:"country_name"`
	Meta        json.RawMessage `json:"meta,omitempty"`
}

// LeadRawResponse is the raw-resolution view of a lead: normalization and
// zone resolution only, no scoring.
type LeadRawResponse struct {
	LeadID      string `json:"lead_id"`
	PhoneInput  string `json:"phone_input"`
	PhoneDigits string `json:"phone_digits"`
	PhoneE164   string `json:"phone_e164"`

	CountryName string `json:"country_name"`
	CountryISO2 string `json:"country_iso2"`

	TimezoneIANA string `json:"timezone_iana"`
	TzAmbiguous  bool   `json:"tz_ambiguous"`
	TzSource     string `json:"tz_source"` // "number" | "country_fallback" | "empty"

	Meta json.RawMessage `json:"meta,omitempty"`
}

// ScheduledLeadResponse is the operational view of a lead: callability,
// next-call instants, and priority.
type ScheduledLeadResponse struct {
	LeadID      string `json:"lead_id"`
	PhoneDigits string `json:"phone_digits"`
	CountryName string `json:"country_name"`

	TimezoneIANA string `json:"timezone_iana"`
	TzAmbiguous  bool   `json:"tz_ambiguous"`

	LeadLocalTimeNow string `json:"lead_local_time_now"`
	CanCallNow       bool   `json:"can_call_now"`

	NextCallLeadLocal string `json:"next_call_lead_local"`
	NextCallReference string `json:"next_call_reference"`

	PriorityScore int `json:"priority_score"`
}

// NextToCallResponse carries the selected lead, the selection reason, and
// batch counts.
type NextToCallResponse struct {
	Selected         *ScheduledLeadResponse `json:"selected"`
	Reason           string                 `json:"reason"`
	TotalLeads       int                    `json:"total_leads"`
	CallableNowCount int                    `json:"callable_now_count"`
}

// CallWindowRequest asks for the dispatcher window in one lead's local time.
type CallWindowRequest struct {
	Phone       string `json:"phone_e164_or_digits" validate:"required"`
	CountryName string `json:"country_name"`
}

// CallWindowResponse is a local clock-of-day window, empty when the lead's
// zone could not be resolved.
type CallWindowResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
