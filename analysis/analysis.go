// Package analysis chains token filters after the tokenizer, producing
// index terms.
//
// The default Japanese chain folds character widths, stems katakana words
// ending in a prolonged sound mark and drops English stop words. Filters
// only rewrite token text; offsets keep pointing into the original input.
package analysis

import (
	"io"
	"iter"
	"strings"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-tinyseg"
)

// Filter rewrites or drops a single token.
type Filter interface {
	// Filter returns the token to pass on and whether to keep it.
	Filter(tok tinyseg.Token) (tinyseg.Token, bool)
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(tok tinyseg.Token) (tinyseg.Token, bool)

// Filter implements Filter.
func (f FilterFunc) Filter(tok tinyseg.Token) (tinyseg.Token, bool) { return f(tok) }

// Analyzer runs a tokenizer followed by filters in order.
type Analyzer struct {
	filters  []Filter
	tokenize []tinyseg.Option
}

// New returns an analyzer applying filters in the given order.
func New(filters []Filter, opts ...tinyseg.Option) *Analyzer {
	return &Analyzer{filters: filters, tokenize: opts}
}

// NewJapanese returns the standard chain: width folding, katakana stemming
// and stop word removal.
func NewJapanese(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	filters := []Filter{
		WidthFilter(),
		KatakanaStemFilter(cfg.keywords...),
		StopFilter(cfg.stopWords...),
	}
	return New(filters, cfg.tokenizer...)
}

// Stream analyzes r lazily. Iteration stops after the first error.
func (a *Analyzer) Stream(r io.Reader) iter.Seq2[tinyseg.Token, error] {
	return func(yield func(tinyseg.Token, error) bool) {
		for tok, err := range tinyseg.New(r, a.tokenize...).All() {
			if err != nil {
				yield(tinyseg.Token{}, err)
				return
			}
			tok, ok := a.apply(tok)
			if !ok {
				continue
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Analyze returns every surviving token of r.
func (a *Analyzer) Analyze(r io.Reader) ([]tinyseg.Token, error) {
	var out []tinyseg.Token
	for tok, err := range a.Stream(r) {
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	return out, nil
}

// Terms returns the surviving token texts of s.
func (a *Analyzer) Terms(s string) []string {
	// strings.Reader does not fail and filters cannot
	tokens, _ := a.Analyze(strings.NewReader(s))
	return lo.Map(tokens, func(tok tinyseg.Token, _ int) string { return tok.Text })
}

func (a *Analyzer) apply(tok tinyseg.Token) (tinyseg.Token, bool) {
	for _, f := range a.filters {
		var ok bool
		if tok, ok = f.Filter(tok); !ok {
			return tok, false
		}
	}
	return tok, true
}
