package sentence

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Uniseg breaks sentences with github.com/rivo/uniseg.
type Uniseg struct {
	rest  string
	state int
	pos   int
}

// NewUniseg returns a Breaker backed by uniseg.FirstSentenceInString.
func NewUniseg() Breaker {
	return &Uniseg{}
}

// SetText implements Breaker.
func (b *Uniseg) SetText(text []uint16) {
	b.rest = view(text)
	b.state = -1
	b.pos = 0
}

// Next implements Breaker.
func (b *Uniseg) Next() (Span, bool) {
	if b.rest == "" {
		return Span{}, false
	}
	var sent string
	sent, b.rest, b.state = uniseg.FirstSentenceInString(b.rest, b.state)
	n := utf8.RuneCountInString(sent)
	s := Span{Start: b.pos, End: b.pos + n}
	b.pos = s.End
	return s, true
}
