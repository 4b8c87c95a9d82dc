// Package format renders raw user input against declarative character
// patterns, the way text inputs live-format a phone number while it is being
// typed.
//
// A Pattern is an ordered list of segments. Each segment either inserts a
// literal character into the display output (Exactly) or fills a fixed number
// of slots with input characters satisfying a predicate (Chars), skipping
// characters that do not match. Applying a pattern yields both the formatted
// display string and the raw characters the pattern consumed, so callers can
// store the canonical value while showing the punctuated one.
//
// The package is stateless and free of side effects; every function is safe
// for concurrent use. Application is total: any input, including the empty
// string or non-matching garbage, produces a Result rather than an error.
//
// # Usage
//
//	res := format.USPhoneNumber("5551234567")
//	// res.Formatted == "(555) 123-4567"
//	// res.Raw       == "5551234567"
//
// Partial input produces partial output, which is what a text field wants on
// every keystroke:
//
//	format.USPhoneNumber("555").Formatted // "(555"
//
// Custom patterns are built from the same segments:
//
//	card := format.Pattern{
//	    format.Chars(format.Digit, 4),
//	    format.Exactly(' '),
//	    format.Chars(format.Digit, 4),
//	}
//	card.Apply("12345678").Formatted // "1234 5678"
package format
