package schedule

// Calling policy. These are fixed named constants; nothing reconfigures them
// at runtime.
const (
	// Daily local calling window, inclusive on both ends.
	callStartHour   = 7
	callStartMinute = 0
	callEndHour     = 18
	callEndMinute   = 59

	// peakHour is the assumed best local contact hour; callable leads score
	// higher the closer their local clock sits to it.
	peakHour = 13

	// ReferenceZone anchors cross-zone comparisons: the dispatcher's zone.
	ReferenceZone = "Europe/Istanbul"

	// Reference-zone daily dispatcher window translated by CallWindowAt.
	referenceWindowStartHour = 10
	referenceWindowEndHour   = 22
)

var (
	windowStartSec = callStartHour*3600 + callStartMinute*60
	windowEndSec   = callEndHour*3600 + callEndMinute*60
)
