package attendance

import "errors"

// Attendance domain errors
var (
	ErrPunchNotFound       = errors.New("punch event not found")
	ErrEmployeeNotMapped   = errors.New("no employee registered for this device user id")
	ErrInvalidDateRange    = errors.New("from date must not be after to date")
	ErrNoDeviceConfigured  = errors.New("no device configured for this department")
	ErrUnauthorized        = errors.New("unauthorized to access this attendance record")
	ErrPushPayloadTooLarge = errors.New("push payload exceeds the allowed batch size")
)
