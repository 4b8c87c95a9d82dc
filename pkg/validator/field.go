package validator

// Validator checks a single form-field value and returns a user-facing
// message as an error, or nil when the value passes.
type Validator func(value string) error

// Combine chains validators left to right into one Validator that returns
// the first failure, so order encodes priority: put ValidateRequired before
// format checks. Callers needing every message should run the validators
// individually, or use Apply with field rules.
func Combine(validators ...Validator) Validator {
	return func(value string) error {
		for _, validate := range validators {
			if err := validate(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// ValidateRequired fails with ErrRequired on the empty string. Values are
// strictly strings here: whitespace counts as present.
func ValidateRequired(value string) error {
	if value == "" {
		return ErrRequired
	}
	return nil
}

// ValidateEmail fails with ErrInvalidEmail unless value looks like an email
// address. The empty string fails too; pair with ValidateRequired when the
// field is mandatory.
func ValidateEmail(value string) error {
	if !IsValidEmail(value) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePhone fails with ErrInvalidPhoneNumber on partially entered or
// malformed US phone numbers. An empty field passes; absence is validated
// separately.
func ValidatePhone(value string) error {
	if !IsValidUSPhoneNumber(value) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

// ValidateZipCode fails with ErrInvalidZipCode unless value is a 5-digit or
// ZIP+4 code. An empty field passes; absence is validated separately.
func ValidateZipCode(value string) error {
	if value == "" {
		return nil
	}
	if !IsValidZipCode(value) {
		return ErrInvalidZipCode
	}
	return nil
}
