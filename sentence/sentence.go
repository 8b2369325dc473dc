// Package sentence splits a buffer of UTF-16 code units into sentences
// using the Unicode UAX #29 sentence boundary rules.
//
// Implementations work on a string view of the units in which every unit
// is exactly one rune: surrogate halves are presented as ',' so that they
// never start or end a sentence, and span positions can be reported as
// unit indices.
package sentence

// Span is a half-open range [Start, End) of unit indices.
type Span struct {
	Start int
	End   int
}

// Len returns the number of units in the span.
func (s Span) Len() int { return s.End - s.Start }

// Breaker yields consecutive sentence spans over the text it was last
// given. A Breaker that has not been given any text yields nothing.
type Breaker interface {
	// SetText restarts the breaker on text. The slice is only read
	// during SetText; spans index into it.
	SetText(text []uint16)

	// Next returns the next span, or false when the text is exhausted.
	Next() (Span, bool)
}

// Factory creates a Breaker. Tokenizers call it once and reuse the result.
type Factory func() Breaker

// stand-in for surrogate units
const surrogateMask = ','

// view renders units as a string with one rune per unit.
func view(text []uint16) string {
	runes := make([]rune, len(text))
	for i, u := range text {
		if u >= 0xD800 && u <= 0xDFFF {
			runes[i] = surrogateMask
			continue
		}
		runes[i] = rune(u)
	}
	return string(runes)
}

// Split runs a fresh breaker from f over text and collects every span.
func Split(f Factory, text []uint16) []Span {
	b := f()
	b.SetText(text)
	var spans []Span
	for {
		s, ok := b.Next()
		if !ok {
			return spans
		}
		spans = append(spans, s)
	}
}
