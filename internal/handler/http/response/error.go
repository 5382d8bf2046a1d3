package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hubtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to the user-facing envelope messages.
// The wording is part of the wire contract; clients match on it.
func HandleError(w http.ResponseWriter, err error) {
	var missingParam validator.MissingParamError
	var cooldown attendance.CooldownError
	var geofence attendance.GeofenceError

	switch {
	case errors.As(err, &missingParam):
		Fail(w, fmt.Sprintf("Missing required parameter: %s", missingParam.Param))

	// Employee domain errors
	case errors.Is(err, employee.ErrPasswordTooShort):
		Fail(w, "Password must be at least 6 characters")
	case errors.Is(err, employee.ErrLocationRequired):
		Fail(w, "Location data required")
	case errors.Is(err, employee.ErrLowLocationAccuracy):
		Fail(w, "Location accuracy is too low (must be ≤ 50 meters)")
	case errors.Is(err, employee.ErrInvalidRole):
		Fail(w, "Invalid role")
	case errors.Is(err, employee.ErrOfficeDoesNotExist):
		Fail(w, "Office does not exist")
	case errors.Is(err, employee.ErrPhoneExists):
		Fail(w, "Employee with this phone number already exists")
	case errors.Is(err, employee.ErrInvalidCredentials):
		Fail(w, "Invalid phone or password")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		Fail(w, "Employee not found")

	// Office domain errors
	case errors.Is(err, office.ErrOfficeNotFound):
		Fail(w, "Office not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrCoordinatesRequired):
		Fail(w, "Latitude and longitude are required")
	case errors.Is(err, attendance.ErrPhoneNotRegistered):
		Fail(w, "Phone number not registered")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Fail(w, "Already checked-in today for this shift")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		Fail(w, "No active check-in found")
	case errors.As(err, &cooldown):
		Fail(w, fmt.Sprintf("Wait %.1f hours to check-in again", cooldown.RemainingHours))
	case errors.As(err, &geofence):
		Fail(w, fmt.Sprintf("You are too far from office (%.0f meters)", geofence.DistanceMeters))

	// Default
	default:
		Fail(w, "Server error: "+err.Error())
	}
}
