package analysis

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/jamesainslie/go-tinyseg"
)

func TestJapanese_Terms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "katakana stemming",
			input: "カタカナ語のコンピューター",
			want:  []string{"カタカナ", "語", "の", "コンピュータ"},
		},
		{
			name:  "four character katakana",
			input: "サーバーとユーザー",
			want:  []string{"サーバ", "と", "ユーザ"},
		},
		{
			name:  "fullwidth latin and digits fold",
			input: "ＡＢＣ１２３です",
			want:  []string{"ABC", "123", "です"},
		},
		{
			name:  "halfwidth katakana folds and composes",
			input: "ｶﾞｲﾄﾞﾌﾞｯｸを読む",
			want:  []string{"ガイドブ", "ッ", "ク", "を", "読む"},
		},
		{
			name:  "english stop words",
			input: "I like the Tokyo tower",
			want:  []string{"I", "Tokyo", "tower"},
		},
	}

	a := NewJapanese()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Terms(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("Terms(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJapanese_OffsetsUnchanged(t *testing.T) {
	input := "ＡＢＣ１２３です"
	got, err := NewJapanese().Analyze(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	raw := tinyseg.Tokenize(input)
	if len(got) != len(raw) {
		t.Fatalf("got %d tokens, tokenizer produced %d", len(got), len(raw))
	}
	for i := range got {
		if got[i].Start != raw[i].Start || got[i].End != raw[i].End {
			t.Errorf("token %d offsets [%d:%d], want [%d:%d]", i, got[i].Start, got[i].End, raw[i].Start, raw[i].End)
		}
	}
}

func TestWithKeywords(t *testing.T) {
	a := NewJapanese(WithKeywords("コンピューター"))
	got := a.Terms("コンピューター")
	if !slices.Equal(got, []string{"コンピューター"}) {
		t.Errorf("protected keyword was stemmed: %q", got)
	}
}

func TestWithStopWords(t *testing.T) {
	a := NewJapanese(WithStopWords("の", "は"))
	got := a.Terms("私の名前は中野です")
	want := []string{"私", "名前", "中野", "です"}
	if !slices.Equal(got, want) {
		t.Errorf("Terms = %q, want %q", got, want)
	}
}

func TestStemKatakana(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"コンピューター", "コンピュータ"},
		{"サーバー", "サーバ"},
		{"バー", "バー"},
		{"ローラー", "ローラ"},
		{"ゲームー", "ゲーム"},
		{"ひらがなー", "ひらがなー"},
		{"ゟカカー", "ゟカカー"},
		{"ガイドブック", "ガイドブック"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stemKatakana(tt.in); got != tt.want {
			t.Errorf("stemKatakana(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNew_CustomFilters(t *testing.T) {
	upper := FilterFunc(func(tok tinyseg.Token) (tinyseg.Token, bool) {
		tok.Text = strings.ToUpper(tok.Text)
		return tok, true
	})
	dropDigits := FilterFunc(func(tok tinyseg.Token) (tinyseg.Token, bool) {
		return tok, !strings.ContainsAny(tok.Text, "0123456789")
	})

	a := New([]Filter{upper, dropDigits})
	got := a.Terms("page123and456")
	if !slices.Equal(got, []string{"PAGE", "AND"}) {
		t.Errorf("Terms = %q", got)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestAnalyze_ReadError(t *testing.T) {
	_, err := NewJapanese().Analyze(errReader{})
	if !errors.Is(err, tinyseg.ErrRead) {
		t.Errorf("Analyze error = %v, want ErrRead", err)
	}
}
