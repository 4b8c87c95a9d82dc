package format

// USPhonePattern renders ten digits as a NANP number: (123) 456-7890.
var USPhonePattern = Pattern{
	Exactly('('),
	Chars(Digit, 3),
	Exactly(')'),
	Exactly(' '),
	Chars(Digit, 3),
	Exactly('-'),
	Chars(Digit, 4),
}

// USPhoneNumber formats value against USPhonePattern. Partial input yields a
// partial display string; Raw carries the up-to-ten digits extracted from the
// input with all other characters stripped.
func USPhoneNumber(value string) Result {
	return USPhonePattern.Apply(value)
}
