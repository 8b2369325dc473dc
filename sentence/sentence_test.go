package sentence

import (
	"testing"
	"unicode/utf16"

	"golang.org/x/text/language"
	"pgregory.net/rapid"
)

func units(s string) []uint16 { return utf16.Encode([]rune(s)) }

var breakers = []struct {
	name string
	new  Factory
}{
	{"uax29", NewUAX29},
	{"uniseg", NewUniseg},
}

func TestBreakers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "japanese full stops",
			input: "今日は晴れ。明日は雨。",
			want:  []Span{{0, 6}, {6, 11}},
		},
		{
			name:  "english with trailing space",
			input: "Hello world. How are you?",
			want:  []Span{{0, 13}, {13, 25}},
		},
		{
			name:  "paragraph separator",
			input: "a\nb",
			want:  []Span{{0, 2}, {2, 3}},
		},
		{
			name:  "surrogate pair stays inside",
			input: "a𠮷b.",
			want:  []Span{{0, 5}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, b := range breakers {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				got := Split(b.new, units(tt.input))
				if len(got) != len(tt.want) {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
				for i := range got {
					if got[i] != tt.want[i] {
						t.Errorf("span %d = %v, want %v", i, got[i], tt.want[i])
					}
				}
			})
		}
	}
}

func TestBreaker_NoText(t *testing.T) {
	for _, b := range breakers {
		if s, ok := b.new().Next(); ok {
			t.Errorf("%s: Next() without SetText = %v, true", b.name, s)
		}
	}
}

func TestBreaker_SetTextRestarts(t *testing.T) {
	for _, b := range breakers {
		br := b.new()
		br.SetText(units("一。二。"))
		if _, ok := br.Next(); !ok {
			t.Fatalf("%s: expected a span", b.name)
		}
		br.SetText(units("三。"))
		s, ok := br.Next()
		if !ok || s != (Span{0, 2}) {
			t.Errorf("%s: after SetText got %v, %v", b.name, s, ok)
		}
	}
}

func TestBreaker_CoversText(t *testing.T) {
	alphabet := []rune("あいう漢字カナab 1.。！？\n、「」𠮷 ")
	for _, b := range breakers {
		t.Run(b.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				text := units(rapid.StringOf(rapid.RuneFrom(alphabet)).Draw(rt, "text"))
				pos := 0
				for _, s := range Split(b.new, text) {
					if s.Start != pos || s.End <= s.Start {
						rt.Fatalf("span %v does not continue at %d", s, pos)
					}
					pos = s.End
				}
				if pos != len(text) {
					rt.Fatalf("spans end at %d, text has %d units", pos, len(text))
				}
			})
		})
	}
}

func TestForLocale(t *testing.T) {
	tests := []struct {
		tag     language.Tag
		wantUAX bool
	}{
		{language.Japanese, true},
		{language.MustParse("ja-JP"), true},
		{language.English, false},
		{language.Und, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			_, isUAX := ForLocale(tt.tag)().(*UAX29)
			if isUAX != tt.wantUAX {
				t.Errorf("ForLocale(%s) uses uax29 = %v, want %v", tt.tag, isUAX, tt.wantUAX)
			}
		})
	}
}

type fixed struct{ done bool }

func (f *fixed) SetText([]uint16) { f.done = false }

func (f *fixed) Next() (Span, bool) {
	if f.done {
		return Span{}, false
	}
	f.done = true
	return Span{0, 1}, true
}

func TestRegister(t *testing.T) {
	tag := language.Thai
	Register(tag, func() Breaker { return &fixed{} })

	if _, ok := ForLocale(tag)().(*fixed); !ok {
		t.Fatal("ForLocale did not return the registered breaker")
	}

	Register(tag, NewUniseg)
	if _, ok := ForLocale(tag)().(*Uniseg); !ok {
		t.Error("re-registering did not replace the breaker")
	}
}
