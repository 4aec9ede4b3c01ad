package services

import "errors"

// Domain errors. Handlers translate these to HTTP statuses at the API
// boundary; anything else surfaces as a logged 500.
var (
	ErrInvalidRegistrationCode = errors.New("invalid registration code")
	ErrDuplicateEmail          = errors.New("a doctor with this email is already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidToken            = errors.New("invalid or expired token")

	ErrNoDoctorAvailable   = errors.New("no doctors are available in the system to handle appointments")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid status value")

	ErrInvalidInfoType = errors.New("invalid medical info type")
	ErrInvalidPayload  = errors.New("invalid payload")
)
