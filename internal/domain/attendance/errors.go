package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrCoordinatesRequired = errors.New("latitude and longitude are required")
	ErrPhoneNotRegistered  = errors.New("phone number not registered")
	ErrAlreadyCheckedIn    = errors.New("already checked-in today for this shift")
	ErrNoActiveCheckIn     = errors.New("no active check-in found")
)

// CooldownError rejects a check-in that comes too soon after the
// previous record for the same phone and shift.
type CooldownError struct {
	RemainingHours float64
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("wait %.1f hours to check-in again", e.RemainingHours)
}

// GeofenceError rejects an event reported further than the allowed
// radius from every office.
type GeofenceError struct {
	DistanceMeters float64
}

func (e GeofenceError) Error() string {
	return fmt.Sprintf("too far from office (%.0f meters)", e.DistanceMeters)
}
