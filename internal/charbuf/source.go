package charbuf

import (
	"bufio"
	"io"
	"unicode/utf16"
)

// FromReader adapts a UTF-8 byte stream to a Reader. Invalid bytes decode
// to U+FFFD. Supplementary characters become surrogate pairs; a pair that
// does not fit in p is completed on the next call.
func FromReader(r io.Reader) Reader {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &runeSource{r: rr}
}

type runeSource struct {
	r       io.RuneReader
	low     uint16
	pending bool
}

func (s *runeSource) ReadUnits(p []uint16) (int, error) {
	n := 0
	if s.pending && len(p) > 0 {
		p[0] = s.low
		s.pending = false
		n = 1
	}
	for n < len(p) {
		r, _, err := s.r.ReadRune()
		if err != nil {
			return n, err
		}
		if r < 0x10000 {
			p[n] = uint16(r)
			n++
			continue
		}
		hi, lo := utf16.EncodeRune(r)
		p[n] = uint16(hi)
		n++
		if n == len(p) {
			s.low, s.pending = uint16(lo), true
			return n, nil
		}
		p[n] = uint16(lo)
		n++
	}
	return n, nil
}

// FromUnits serves a fixed slice of code units.
func FromUnits(units []uint16) Reader {
	return &unitSource{units: units}
}

type unitSource struct {
	units []uint16
}

func (s *unitSource) ReadUnits(p []uint16) (int, error) {
	if len(s.units) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.units)
	s.units = s.units[n:]
	return n, nil
}
