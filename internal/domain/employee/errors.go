package employee

import "errors"

// Employee domain errors
var (
	// Registration errors
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrLocationRequired    = errors.New("location data required")
	ErrLowLocationAccuracy = errors.New("location accuracy is too low")
	ErrInvalidRole         = errors.New("invalid role")
	ErrOfficeDoesNotExist  = errors.New("office does not exist")
	ErrPhoneExists         = errors.New("employee with this phone number already exists")

	// Lookup and login errors
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrEmployeeNotFound   = errors.New("employee not found")
)
