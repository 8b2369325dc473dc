package sentence

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// UAX29 breaks sentences with github.com/clipperhouse/uax29.
type UAX29 struct {
	iter sentences.Iterator[string]
	pos  int
	set  bool
}

// NewUAX29 returns a Breaker backed by the clipperhouse UAX #29 iterator.
func NewUAX29() Breaker {
	return &UAX29{}
}

// SetText implements Breaker.
func (b *UAX29) SetText(text []uint16) {
	b.iter = sentences.FromString(view(text))
	b.pos = 0
	b.set = true
}

// Next implements Breaker.
func (b *UAX29) Next() (Span, bool) {
	if !b.set || !b.iter.Next() {
		return Span{}, false
	}
	n := utf8.RuneCountInString(b.iter.Value())
	s := Span{Start: b.pos, End: b.pos + n}
	b.pos = s.End
	return s, true
}
