package charbuf

import (
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf16"
)

func units(s string) []uint16 { return utf16.Encode([]rune(s)) }

// trickle returns at most step units per call.
type trickle struct {
	units []uint16
	step  int
}

func (r *trickle) ReadUnits(p []uint16) (int, error) {
	if len(r.units) == 0 {
		return 0, io.EOF
	}
	n := min(len(p), r.step, len(r.units))
	copy(p, r.units[:n])
	r.units = r.units[n:]
	return n, nil
}

type failing struct {
	err error
}

func (r failing) ReadUnits(p []uint16) (int, error) { return 0, r.err }

type stalled struct{}

func (stalled) ReadUnits(p []uint16) (int, error) { return 0, nil }

func TestRefill_SafeEnd(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		size       int
		wantLen    int
		wantUsable int
		wantForced bool
	}{
		{
			name:       "source shorter than buffer",
			input:      "abc",
			size:       8,
			wantLen:    3,
			wantUsable: 3,
		},
		{
			name:       "cut after newline",
			input:      "ab\ncdefghij",
			size:       6,
			wantLen:    6,
			wantUsable: 3,
		},
		{
			name:       "last separator wins",
			input:      "a\nb\u2029cdefgh",
			size:       6,
			wantLen:    6,
			wantUsable: 4,
		},
		{
			name:       "no separator forces full buffer",
			input:      "abcdefghij",
			size:       4,
			wantLen:    4,
			wantUsable: 4,
			wantForced: true,
		},
		{
			name:       "forced cut keeps surrogate pair together",
			input:      "abc𠮷def",
			size:       4,
			wantLen:    4,
			wantUsable: 3,
			wantForced: true,
		},
		{
			name:       "next line separator",
			input:      "ab\u0085cdefg",
			size:       5,
			wantLen:    5,
			wantUsable: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(FromUnits(units(tt.input)), tt.size)
			if err := b.Refill(); err != nil {
				t.Fatalf("Refill: %v", err)
			}
			if b.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.wantLen)
			}
			if b.Usable() != tt.wantUsable {
				t.Errorf("Usable() = %d, want %d", b.Usable(), tt.wantUsable)
			}
			if b.Forced() != tt.wantForced {
				t.Errorf("Forced() = %v, want %v", b.Forced(), tt.wantForced)
			}
			if b.Usable() > b.Len() || b.Len() > b.Cap() {
				t.Errorf("broken invariant: usable=%d len=%d cap=%d", b.Usable(), b.Len(), b.Cap())
			}
		})
	}
}

func TestRefill_SlidesLeftover(t *testing.T) {
	b := New(FromUnits(units("ab\ncdefgh")), 5)

	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}
	if got := string(utf16.Decode(b.Units()[:b.Usable()])); got != "ab\n" {
		t.Fatalf("first usable = %q", got)
	}

	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}
	if b.Offset() != 3 {
		t.Errorf("Offset() = %d, want 3", b.Offset())
	}
	// "cd" was left over and "efg" appended; no separator, so forced.
	if got := string(utf16.Decode(b.Units())); got != "cdefg" {
		t.Errorf("Units() = %q, want %q", got, "cdefg")
	}
	if !b.Forced() {
		t.Error("expected forced cut")
	}

	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}
	if got := string(utf16.Decode(b.Units())); got != "h" {
		t.Errorf("Units() = %q, want %q", got, "h")
	}
	if b.Usable() != 1 {
		t.Errorf("Usable() = %d, want 1 at end of input", b.Usable())
	}

	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after exhaustion", b.Len())
	}
	if b.Offset() != 9 {
		t.Errorf("Offset() = %d, want 9", b.Offset())
	}
}

func TestRefill_ShortReadsFillBuffer(t *testing.T) {
	b := New(&trickle{units: units("abcdef\nghij"), step: 2}, 8)
	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 8 {
		t.Errorf("Len() = %d, want 8", b.Len())
	}
	if b.Usable() != 7 {
		t.Errorf("Usable() = %d, want 7", b.Usable())
	}
}

func TestRefill_Errors(t *testing.T) {
	boom := errors.New("boom")

	b := New(failing{err: boom}, 8)
	if err := b.Refill(); !errors.Is(err, boom) {
		t.Errorf("Refill() error = %v, want %v", err, boom)
	}

	b = New(stalled{}, 8)
	if err := b.Refill(); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Refill() error = %v, want io.ErrNoProgress", err)
	}
}

func TestNew_InvalidSize(t *testing.T) {
	if got := New(nil, 0).Cap(); got != DefaultSize {
		t.Errorf("Cap() = %d, want %d", got, DefaultSize)
	}
}

func TestByteOffset(t *testing.T) {
	input := "aé日𠮷\nx"
	b := New(FromReader(strings.NewReader(input)), 16)
	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}

	// a=1 é=2 日=3 𠮷=4 (two units) \n=1 x=1
	want := []int{0, 1, 3, 6, 8, 10, 11, 12}
	for pos, w := range want {
		if got := b.ByteOffset(pos); got != w {
			t.Errorf("ByteOffset(%d) = %d, want %d", pos, got, w)
		}
	}
	// Going backwards rescans from the start.
	if got := b.ByteOffset(2); got != 3 {
		t.Errorf("ByteOffset(2) after rewind = %d, want 3", got)
	}
	if got := b.ByteOffset(b.Len()); got != len(input) {
		t.Errorf("ByteOffset(Len()) = %d, want %d", got, len(input))
	}
}

func TestByteOffset_AcrossRefills(t *testing.T) {
	input := "日本\n語です\nか"
	b := New(FromReader(strings.NewReader(input)), 4)

	total := 0
	for {
		if err := b.Refill(); err != nil {
			t.Fatal(err)
		}
		if b.Len() == 0 {
			break
		}
		total = b.ByteOffset(b.Len())
	}
	if total != len(input) {
		t.Errorf("final byte offset = %d, want %d", total, len(input))
	}
}

func TestFromReader_SplitsSurrogatePairs(t *testing.T) {
	src := FromReader(strings.NewReader("a𠮷b"))
	want := units("a𠮷b")

	var got []uint16
	p := make([]uint16, 2)
	for {
		n, err := src.ReadUnits(p)
		got = append(got, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d units, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit %d = %#04x, want %#04x", i, got[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	b := New(FromUnits(units("abc")), 8)
	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}
	b.Reset(FromUnits(units("xy")))
	if b.Len() != 0 || b.Offset() != 0 {
		t.Fatalf("Reset left len=%d offset=%d", b.Len(), b.Offset())
	}
	if err := b.Refill(); err != nil {
		t.Fatal(err)
	}
	if got := string(utf16.Decode(b.Units())); got != "xy" {
		t.Errorf("Units() = %q, want %q", got, "xy")
	}
}
