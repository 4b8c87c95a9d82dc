package validator

import (
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/format"
)

// emailRegex is deliberately lenient: something@something.something. Stricter
// RFC patterns reject many addresses that work in practice, in particular
// ones containing non-ASCII characters, so anything with an @ and a dotted
// domain passes and mail delivery remains the real arbiter.
var emailRegex = regexp.MustCompile(`^.+@.+\..+$`)

// USZipCodeRegex matches a 5-digit US ZIP code, optionally extended with four
// more digits separated by a hyphen or space (ZIP+4).
var USZipCodeRegex = regexp.MustCompile(`^[0-9]{5}(?:[-\s]?[0-9]{4})?$`)

// IsValidEmail reports whether value looks like an email address. The empty
// string does not.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsValidUSPhoneNumber reports whether value carries exactly ten digits (a
// complete US number) or none at all. Digits are extracted the way the phone
// formatter extracts them, so punctuation and stray characters are ignored.
// An empty field is not flagged here; absence is ValidateRequired's concern.
func IsValidUSPhoneNumber(value string) bool {
	raw := format.USPhoneNumber(value).Raw
	return len(raw) == 0 || len(raw) == 10
}

// IsValidZipCode reports whether value is a standard 5-digit or ZIP+4 code.
func IsValidZipCode(value string) bool {
	return USZipCodeRegex.MatchString(value)
}
