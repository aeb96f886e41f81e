// Package phone provides phone number normalization utilities.
// This is part of the platform layer and contains no business logic.
package phone

import "strings"

// Digits strips everything except decimal digits from raw input. Absent or
// fully non-numeric input yields an empty string; normalization has no
// failure mode.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// E164 renders a digit string in E.164 form by prefixing "+". The result is
// empty iff the normalized digits are empty.
func E164(digits string) string {
	d := Digits(digits)
	if d == "" {
		return ""
	}
	return "+" + d
}
