package format

// Result holds the two projections of formatted input: the display string
// with pattern literals applied, and the raw characters the pattern consumed.
type Result struct {
	Formatted string
	Raw       string
}

// Digit reports whether r is an ASCII decimal digit.
func Digit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Segment is one unit of a format pattern: either a literal character
// inserted into the output, or a run of character-class slots filled from the
// input. Construct segments with Exactly or Chars.
type Segment struct {
	literal rune
	class   func(rune) bool
	repeat  int
}

// Exactly returns a segment that inserts r into the formatted output. When
// the input already carries r at that position it is consumed, which makes
// reformatting canonical input a no-op.
func Exactly(r rune) Segment {
	return Segment{literal: r}
}

// Chars returns a segment that fills repeat slots with input characters
// satisfying class. Input characters failing class are skipped, not copied.
func Chars(class func(rune) bool, repeat int) Segment {
	return Segment{class: class, repeat: repeat}
}

// Pattern is an ordered sequence of segments applied to an input stream.
type Pattern []Segment

// Apply walks the pattern over input left to right and returns the partially
// or fully formatted result. Formatting stops at the first segment for which
// no input remains, so literals trailing the typed characters are omitted and
// progressive input builds up progressive output. Raw is bounded by the
// pattern's class-slot capacity; input beyond it is ignored.
func (p Pattern) Apply(input string) Result {
	var formatted, raw []rune
	in := []rune(input)
	i := 0

	for _, seg := range p {
		if seg.class == nil {
			if i >= len(in) {
				break
			}
			if in[i] == seg.literal {
				i++
			}
			formatted = append(formatted, seg.literal)
			continue
		}

		filled := 0
		for filled < seg.repeat {
			for i < len(in) && !seg.class(in[i]) {
				i++
			}
			if i >= len(in) {
				break
			}
			formatted = append(formatted, in[i])
			raw = append(raw, in[i])
			i++
			filled++
		}
		if filled < seg.repeat {
			break
		}
	}

	return Result{Formatted: string(formatted), Raw: string(raw)}
}
