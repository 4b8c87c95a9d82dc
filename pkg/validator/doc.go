// Package validator provides stateless validation helpers for form-field
// string values: email addresses, US phone numbers, US ZIP codes and a
// required check.
//
// The package exposes the same checks at three levels:
//
//   - Detectors (IsValidEmail, IsValidUSPhoneNumber, IsValidZipCode) report
//     plain booleans for callers that render their own feedback.
//   - Validators (ValidateRequired, ValidateEmail, ValidatePhone,
//     ValidateZipCode) return a user-facing message as an error, or nil.
//     Combine chains validators and surfaces the first failure, which is the
//     order-sensitive behavior a single form field wants.
//   - Rules (Required, ValidEmail, ValidUSPhoneNumber, ValidZipCode) carry a
//     field name, and Apply aggregates every failing rule into a
//     ValidationErrors value for rendering a whole form at once.
//
// All helpers are pure functions over strings with no hidden state, so they
// are safe for concurrent use. No function panics or returns an unexpected
// error: malformed input yields a negative boolean or a validation message.
//
// # Usage
//
//	checkEmail := validator.Combine(validator.ValidateRequired, validator.ValidateEmail)
//	if err := checkEmail(input); err != nil {
//	    // err.Error() is ready to show next to the field, e.g. "Required"
//	}
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.ValidZipCode("zip", zip),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
package validator
