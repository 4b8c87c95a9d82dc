package validator

import "errors"

// Field-level messages returned by the Validate* helpers. They are display
// strings shown next to a form field, hence the sentence casing.
var (
	// ErrRequired is returned when a required field is empty.
	ErrRequired = errors.New("Required")

	// ErrInvalidEmail is returned when a value does not look like an email address.
	ErrInvalidEmail = errors.New("Invalid email address")

	// ErrInvalidPhoneNumber is returned when a value is a partial or malformed US phone number.
	ErrInvalidPhoneNumber = errors.New("Invalid phone number")

	// ErrInvalidZipCode is returned when a value is not a 5-digit or ZIP+4 code.
	ErrInvalidZipCode = errors.New("Invalid ZIP code")
)
