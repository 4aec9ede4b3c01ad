package utils

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateRegistration validates a doctor registration payload.
func ValidateRegistration(name, email, password string) error {
	return validation.Errors{
		"name":     validation.Validate(name, validation.Required, validation.Length(2, 100)),
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required, validation.Length(8, 72)),
	}.Filter()
}

// ValidateLogin validates a login payload.
func ValidateLogin(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}

// ValidateAppointmentRequest validates the public appointment request payload.
// All fields are required, matching the intake form.
func ValidateAppointmentRequest(name, emailOrMobile, date, timeOfDay, reason string) error {
	return validation.Errors{
		"name":          validation.Validate(name, validation.Required, validation.Length(2, 100)),
		"emailOrMobile": validation.Validate(emailOrMobile, validation.Required, validation.Length(3, 255)),
		"date":          validation.Validate(date, validation.Required),
		"time":          validation.Validate(timeOfDay, validation.Required),
		"reason":        validation.Validate(reason, validation.Required),
	}.Filter()
}

// ValidateDoctorAppointment validates the doctor-initiated appointment payload.
func ValidateDoctorAppointment(patientID, date, timeOfDay, reason string) error {
	return validation.Errors{
		"patientId": validation.Validate(patientID, validation.Required),
		"date":      validation.Validate(date, validation.Required),
		"time":      validation.Validate(timeOfDay, validation.Required),
		"reason":    validation.Validate(reason, validation.Required),
	}.Filter()
}

// IsEmailAddress reports whether the contact value is an email address, as
// opposed to a phone number. Used to decide whether a notification email can
// be sent for an emailOrMobile contact.
func IsEmailAddress(contact string) bool {
	return validation.Validate(contact, validation.Required, is.Email) == nil
}
