package validator

// Field rules wrap the Validate* helpers for aggregation with Apply. Each
// rule reports the same message its Validator counterpart returns, tagged
// with the field name.

// Required validates that a string field is not empty.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidateRequired(value) == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrRequired.Error(),
		},
	}
}

// ValidEmail validates that a string field looks like an email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrInvalidEmail.Error(),
		},
	}
}

// ValidUSPhoneNumber validates that a string field is an empty or complete
// ten-digit US phone number.
func ValidUSPhoneNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidUSPhoneNumber(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrInvalidPhoneNumber.Error(),
		},
	}
}

// ValidZipCode validates that a string field is an empty, 5-digit or ZIP+4
// code.
func ValidZipCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidateZipCode(value) == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrInvalidZipCode.Error(),
		},
	}
}
