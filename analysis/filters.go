package analysis

import (
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-tinyseg"
)

// WidthFilter folds fullwidth ASCII to halfwidth and halfwidth katakana to
// fullwidth. A halfwidth voiced or semi-voiced mark is composed into the
// kana before it where Unicode defines the composition.
func WidthFilter() Filter {
	return FilterFunc(func(tok tinyseg.Token) (tinyseg.Token, bool) {
		tok.Text = norm.NFC.String(width.Fold.String(tok.Text))
		return tok, true
	})
}

const prolongedSoundMark = 'ー'

// KatakanaStemFilter strips a trailing prolonged sound mark (ー) from
// katakana terms of four or more characters, so that コンピューター and
// コンピュータ index alike. Terms listed in keywords are left alone.
func KatakanaStemFilter(keywords ...string) Filter {
	protected := lo.Keyify(keywords)
	return FilterFunc(func(tok tinyseg.Token) (tinyseg.Token, bool) {
		if _, ok := protected[tok.Text]; ok {
			return tok, true
		}
		tok.Text = stemKatakana(tok.Text)
		return tok, true
	})
}

func stemKatakana(s string) string {
	runes := []rune(s)
	n := len(runes)
	if n <= 3 || runes[n-1] != prolongedSoundMark {
		return s
	}
	for _, r := range runes[:n-1] {
		// katakana block plus the combining (semi-)voiced marks, without
		// the hiragana digraph yori
		if r < 0x3099 || r > 0x30FF || r == 0x309F {
			return s
		}
	}
	return string(runes[:n-1])
}

// StopFilter drops tokens whose text is in words. Matching is exact.
func StopFilter(words ...string) Filter {
	stop := lo.Keyify(words)
	return FilterFunc(func(tok tinyseg.Token) (tinyseg.Token, bool) {
		_, drop := stop[tok.Text]
		return tok, !drop
	})
}
