package domain

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeExists     = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrForbidden          = errors.New("access denied")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrNoActiveCheckIn  = errors.New("no active check-in found")

	ErrRequestNotFound  = errors.New("request not found")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrRequestFinalized = errors.New("request already decided")
)
