// Package model implements the TinySegmenter boundary scoring model.
//
// The model decides, for each position between two UTF-16 code units of a
// sentence, whether a word boundary falls there. The decision is the sign of
// a sum of 42 sparse feature weights plus a bias. The features look at a
// six-unit window around the position, the character category of each unit
// in the window and the outcome of the three preceding decisions.
//
// All tables are immutable package data and safe for concurrent use. The
// decision state is an explicit [State] value owned by the caller.
package model

// Category is the coarse character class the model conditions on.
type Category uint8

// Character categories. The numeric values take part in packed table keys
// and must not change.
const (
	Other             Category = iota // punctuation, symbols, sentinels, anything unclassified
	IdeographicNumber                 // kanji numerals: 一二三四五六七八九十百千万億兆
	Ideographic                       // CJK unified ideographs and 々〆ヵヶ
	Hiragana
	Katakana // full and halfwidth katakana, including the prolonged sound mark
	Alphabetic
	Numeric
)

var categoryNames = [...]string{"O", "M", "H", "I", "K", "A", "N"}

// String returns the single letter tag used by the trained model.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "?"
}

// CategoryOf classifies a code unit. Surrogate halves, private use values
// and invalid runes all map to Other.
func CategoryOf(r rune) Category {
	switch r {
	case 0x4E00, 0x4E8C, 0x4E09, 0x56DB, 0x4E94, 0x516D, 0x4E03, 0x516B,
		0x4E5D, 0x5341, 0x767E, 0x5343, 0x4E07, 0x5104, 0x5146:
		return IdeographicNumber
	case 0x3005, 0x3006, 0x30F5, 0x30F6:
		return Ideographic
	case 0x30FC, 0xFF9E, 0xFF70:
		return Katakana
	}
	switch {
	case r >= 0x4E00 && r <= 0x9FA0:
		return Ideographic
	case r >= 0x3041 && r <= 0x3093:
		return Hiragana
	case r >= 0x30A1 && r <= 0x30F4, r >= 0xFF71 && r <= 0xFF9D:
		return Katakana
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z',
		r >= 0xFF21 && r <= 0xFF3A, r >= 0xFF41 && r <= 0xFF5A:
		return Alphabetic
	case r >= '0' && r <= '9', r >= 0xFF10 && r <= 0xFF19:
		return Numeric
	default:
		return Other
	}
}

// Context is the outcome of an earlier boundary decision.
type Context uint8

// Decision contexts. Unknown is used before the first decision of a sentence.
const (
	Unknown Context = iota
	NoBreak
	Break
)

func (c Context) String() string {
	switch c {
	case NoBreak:
		return "O"
	case Break:
		return "B"
	default:
		return "U"
	}
}

// State carries the last three decisions, oldest first.
type State struct {
	P1, P2, P3 Context
}

// Push shifts a decision into the state and returns the new state.
func (s State) Push(brk bool) State {
	next := State{P1: s.P2, P2: s.P3, P3: NoBreak}
	if brk {
		next.P3 = Break
	}
	return next
}

// Bias is added to every score.
const Bias = -332

// Sentinel units stand in for positions outside the sentence. B3 is 0xE003,
// not 0xE002; the trained tables depend on it.
const (
	B1 uint16 = 0xE000
	B2 uint16 = 0xE001
	B3 uint16 = 0xE003
	E1 uint16 = 0xE004
	E2 uint16 = 0xE005
	E3 uint16 = 0xE006
)

// Window holds the six units c1..c6 around a candidate boundary. The
// boundary falls between c3 and c4.
type Window [6]uint16

// WindowAt builds the window for the boundary before text[pos] in the
// sentence text[start:end]. Positions outside the sentence read as
// sentinels; pos must satisfy start < pos < end.
func WindowAt(text []uint16, start, end, pos int) Window {
	var w Window
	for i := range w {
		w[i] = unitAt(text, start, end, pos-3+i)
	}
	return w
}

func unitAt(text []uint16, start, end, i int) uint16 {
	switch i {
	case start - 3:
		return B3
	case start - 2:
		return B2
	case start - 1:
		return B1
	case end:
		return E1
	case end + 1:
		return E2
	case end + 2:
		return E3
	}
	return text[i]
}

type feature uint8

const (
	up1 feature = iota
	up2
	up3
	bp1
	bp2
	uw1
	uw2
	uw3
	uw4
	uw5
	uw6
	bw1
	bw2
	bw3
	tw1
	tw2
	tw3
	tw4
	uc1
	uc2
	uc3
	uc4
	uc5
	uc6
	bc1
	bc2
	bc3
	tc1
	tc2
	tc3
	tc4
	uq1
	uq2
	uq3
	bq1
	bq2
	bq3
	bq4
	tq1
	tq2
	tq3
	tq4
	numFeatures
)

// Category and context values fit in three bits each.
func pack2(a, b uint64) uint64       { return a<<3 | b }
func pack3(a, b, c uint64) uint64    { return a<<6 | b<<3 | c }
func pack4(a, b, c, d uint64) uint64 { return a<<9 | b<<6 | c<<3 | d }

func units2(a, b uint16) uint64    { return uint64(a)<<16 | uint64(b) }
func units3(a, b, c uint16) uint64 { return uint64(a)<<32 | uint64(b)<<16 | uint64(c) }

func (f feature) at(key uint64) int {
	return int(weights[f][key])
}

// Score returns the boundary score for a window in the given state.
func Score(w Window, s State) int {
	c1, c2, c3, c4, c5, c6 := w[0], w[1], w[2], w[3], w[4], w[5]
	t1 := uint64(CategoryOf(rune(c1)))
	t2 := uint64(CategoryOf(rune(c2)))
	t3 := uint64(CategoryOf(rune(c3)))
	t4 := uint64(CategoryOf(rune(c4)))
	t5 := uint64(CategoryOf(rune(c5)))
	t6 := uint64(CategoryOf(rune(c6)))
	p1, p2, p3 := uint64(s.P1), uint64(s.P2), uint64(s.P3)

	score := Bias
	score += up1.at(p1) + up2.at(p2) + up3.at(p3)
	score += bp1.at(pack2(p1, p2)) + bp2.at(pack2(p2, p3))

	score += uw1.at(uint64(c1)) + uw2.at(uint64(c2)) + uw3.at(uint64(c3)) +
		uw4.at(uint64(c4)) + uw5.at(uint64(c5)) + uw6.at(uint64(c6))
	score += bw1.at(units2(c2, c3)) + bw2.at(units2(c3, c4)) + bw3.at(units2(c4, c5))
	score += tw1.at(units3(c1, c2, c3)) + tw2.at(units3(c2, c3, c4)) +
		tw3.at(units3(c3, c4, c5)) + tw4.at(units3(c4, c5, c6))

	score += uc1.at(t1) + uc2.at(t2) + uc3.at(t3) + uc4.at(t4) + uc5.at(t5) + uc6.at(t6)
	score += bc1.at(pack2(t2, t3)) + bc2.at(pack2(t3, t4)) + bc3.at(pack2(t4, t5))
	score += tc1.at(pack3(t1, t2, t3)) + tc2.at(pack3(t2, t3, t4)) +
		tc3.at(pack3(t3, t4, t5)) + tc4.at(pack3(t4, t5, t6))

	score += uq1.at(pack2(p1, t1)) + uq2.at(pack2(p2, t2)) + uq3.at(pack2(p3, t3))
	score += bq1.at(pack3(p2, t2, t3)) + bq2.at(pack3(p2, t3, t4)) +
		bq3.at(pack3(p3, t2, t3)) + bq4.at(pack3(p3, t3, t4))
	score += tq1.at(pack4(p2, t1, t2, t3)) + tq2.at(pack4(p2, t2, t3, t4)) +
		tq3.at(pack4(p3, t1, t2, t3)) + tq4.at(pack4(p3, t2, t3, t4))

	return score
}

// Decide scores a window and reports whether it is a boundary, along with
// the state to use for the next position.
func Decide(w Window, s State) (bool, State) {
	brk := Score(w, s) > 0
	return brk, s.Push(brk)
}

// Breaks runs the model over text as a single sentence and returns every
// position p (0 < p < len(text)) the model places a boundary before.
func Breaks(text []uint16) []int {
	var (
		out []int
		st  State
	)
	for pos := 1; pos < len(text); pos++ {
		var brk bool
		brk, st = Decide(WindowAt(text, 0, len(text), pos), st)
		if brk {
			out = append(out, pos)
		}
	}
	return out
}
