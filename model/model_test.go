package model

import (
	"slices"
	"testing"
	"unicode/utf16"
)

func units(s string) []uint16 { return utf16.Encode([]rune(s)) }

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Category
	}{
		{'一', IdeographicNumber},
		{'億', IdeographicNumber},
		{'兆', IdeographicNumber},
		{'々', Ideographic},
		{'〆', Ideographic},
		{'ヶ', Ideographic},
		{'東', Ideographic},
		{0x9FA0, Ideographic},
		{0x9FA1, Other},
		{'あ', Hiragana},
		{'ん', Hiragana},
		{'ゔ', Other},
		{'ア', Katakana},
		{'ー', Katakana},
		{'ｰ', Katakana},
		{'ﾞ', Katakana},
		{'ｱ', Katakana},
		{'a', Alphabetic},
		{'Z', Alphabetic},
		{'Ａ', Alphabetic},
		{'ｚ', Alphabetic},
		{'0', Numeric},
		{'９', Numeric},
		{'。', Other},
		{' ', Other},
		{rune(B1), Other},
		{rune(E3), Other},
		{0xD842, Other},
		{-1, Other},
	}

	for _, tt := range tests {
		if got := CategoryOf(tt.r); got != tt.want {
			t.Errorf("CategoryOf(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestState_Push(t *testing.T) {
	var s State
	s = s.Push(true)
	if s != (State{Unknown, Unknown, Break}) {
		t.Fatalf("after one push: %+v", s)
	}
	s = s.Push(false).Push(true).Push(true)
	if s != (State{NoBreak, Break, Break}) {
		t.Errorf("after four pushes: %+v", s)
	}
}

func TestWindowAt(t *testing.T) {
	text := units("xabcx")

	// sentence is "abc" at [1, 4)
	tests := []struct {
		pos  int
		want Window
	}{
		{2, Window{B2, B1, 'a', 'b', 'c', E1}},
		{3, Window{B1, 'a', 'b', 'c', E1, E2}},
	}
	for _, tt := range tests {
		if got := WindowAt(text, 1, 4, tt.pos); got != tt.want {
			t.Errorf("WindowAt(pos=%d) = %x, want %x", tt.pos, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	text := units("私の名前は中野です")
	want := []int{8383, 18033, -5786, 15632, 23144, -8714, 10052, -4134}

	var s State
	for pos := 1; pos < len(text); pos++ {
		w := WindowAt(text, 0, len(text), pos)
		got := Score(w, s)
		if got != want[pos-1] {
			t.Errorf("Score at %d = %d, want %d", pos, got, want[pos-1])
		}
		_, s = Decide(w, s)
	}
}

func TestBreaks(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"私の名前は中野です", []int{1, 2, 4, 5, 7}},
		{"東京都に住む", []int{3, 4}},
		{"です。", []int{2}},
		{"page123and456", []int{4, 5, 6, 7, 10, 11, 12}},
		{"a", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Breaks(units(tt.input)); !slices.Equal(got, tt.want) {
				t.Errorf("Breaks(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeights_AllTablesPresent(t *testing.T) {
	total := 0
	for f := range numFeatures {
		if len(weights[f]) == 0 {
			t.Errorf("feature %d has no weights", f)
		}
		total += len(weights[f])
	}
	if total != 1335 {
		t.Errorf("model has %d weights, want 1335", total)
	}
}

func TestScore_EmptyContext(t *testing.T) {
	// A window of unknown characters in an unknown context scores only the
	// bias plus the Other-category and Unknown-context terms.
	w := Window{0x2603, 0x2603, 0x2603, 0x2603, 0x2603, 0x2603}
	base := Score(w, State{})
	if Score(w, State{}) != base {
		t.Fatal("Score is not deterministic")
	}
	if got := Score(w, State{Break, Break, Break}); got == base {
		t.Errorf("context did not change the score (%d)", got)
	}
}

func TestScore_TrailingPunctuationCounts(t *testing.T) {
	// The full stop is dropped from the output but still scores the
	// boundary inside です.
	bare := units("です")
	stop := units("です。")

	got := Score(WindowAt(bare, 0, len(bare), 1), State{})
	if got != -9063 {
		t.Errorf("Score(です) = %d, want -9063", got)
	}
	got = Score(WindowAt(stop, 0, len(stop), 1), State{})
	if got != -10366 {
		t.Errorf("Score(です。) = %d, want -10366", got)
	}
}
