package tinyseg

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-tinyseg/internal/charbuf"
	"github.com/jamesainslie/go-tinyseg/model"
	"github.com/jamesainslie/go-tinyseg/sentence"
)

// Token is a word-like span of the input. Start and End are UTF-8 byte
// offsets, after any offset correction.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// UnitReader is a source of UTF-16 code units, for callers that already
// hold text in that form. It follows io.Reader conventions.
type UnitReader interface {
	ReadUnits(p []uint16) (n int, err error)
}

// UTF16 returns a UnitReader over a fixed slice of code units.
func UTF16(units []uint16) UnitReader {
	return charbuf.FromUnits(units)
}

type status uint8

const (
	skip status = iota
	merge
	emit
)

// Tokenizer splits a stream of Japanese text into tokens. A Tokenizer is
// not safe for concurrent use; use one per goroutine.
type Tokenizer struct {
	buf     *charbuf.Buffer
	breaker sentence.Breaker
	correct func(int) int
	logger  *slog.Logger

	sentStart, sentEnd int
	start, end         int
	state              model.State
	err                error
}

// New returns a Tokenizer reading UTF-8 text from r.
func New(r io.Reader, opts ...Option) *Tokenizer {
	return NewUnits(unitsFrom(r), opts...)
}

// NewUnits returns a Tokenizer reading code units from src.
func NewUnits(src UnitReader, opts ...Option) *Tokenizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := cfg.breaker
	if factory == nil {
		factory = sentence.ForLocale(cfg.locale)
	}

	return &Tokenizer{
		buf:     charbuf.New(src, cfg.bufferSize),
		breaker: factory(),
		correct: cfg.correct,
		logger:  cfg.logger,
	}
}

func unitsFrom(r io.Reader) UnitReader {
	if r == nil {
		return charbuf.FromUnits(nil)
	}
	return charbuf.FromReader(r)
}

// Reset restarts the tokenizer on a new UTF-8 input, keeping its buffer.
func (t *Tokenizer) Reset(r io.Reader) {
	t.ResetUnits(unitsFrom(r))
}

// ResetUnits restarts the tokenizer on a new code unit source.
func (t *Tokenizer) ResetUnits(src UnitReader) {
	t.buf.Reset(src)
	t.breaker.SetText(nil)
	t.sentStart, t.sentEnd = 0, 0
	t.start, t.end = 0, 0
	t.state = model.State{}
	t.err = nil
}

// Next returns the next token. It returns io.EOF once the input is
// exhausted, and an error wrapping ErrRead if the input fails; both are
// returned again on every later call.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}

	if t.buf.Len() > 0 {
		if tok, ok := t.nextWord(); ok {
			return tok, nil
		}
	}
	for {
		if tok, ok := t.nextSentence(); ok {
			return tok, nil
		}
		if err := t.refill(); err != nil {
			t.err = fmt.Errorf("%w: %w", ErrRead, err)
			return Token{}, t.err
		}
		if t.buf.Len() == 0 {
			t.err = io.EOF
			return Token{}, t.err
		}
	}
}

// All returns an iterator over the remaining tokens. Iteration stops after
// the first error, which is yielded; io.EOF is not.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// End returns the corrected offset just past the last input consumed.
// After io.EOF this is the total length of the input.
func (t *Tokenizer) End() int {
	return t.offset(t.buf.ByteOffset(t.buf.Len()))
}

func (t *Tokenizer) refill() error {
	if err := t.buf.Refill(); err != nil {
		t.logger.Debug("read failed", "offset", t.buf.Offset(), "error", err)
		return err
	}
	if t.buf.Forced() {
		t.logger.Debug("no line break in buffer, cutting at buffer edge",
			"offset", t.buf.Offset(),
			"length", t.buf.Len())
	}
	t.breaker.SetText(t.buf.Units()[:t.buf.Usable()])
	return nil
}

func (t *Tokenizer) nextSentence() (Token, bool) {
	for {
		span, ok := t.breaker.Next()
		if !ok {
			return Token{}, false
		}
		t.state = model.State{}
		t.sentStart, t.sentEnd = span.Start, span.End
		t.start, t.end = span.Start, span.Start
		if tok, ok := t.nextWord(); ok {
			return tok, true
		}
	}
}

// nextWord scans the current sentence from the end of the last token.
// Every position is scored exactly once, including positions inside
// skipped spans, so the decision state sees the whole sentence.
func (t *Tokenizer) nextWord() (Token, bool) {
	if t.end >= t.sentEnd {
		return Token{}, false
	}

	units := t.buf.Units()
	t.start = t.end
	for t.end++; t.end < t.sentEnd; t.end++ {
		var brk bool
		w := model.WindowAt(units, t.sentStart, t.sentEnd, t.end)
		brk, t.state = model.Decide(w, t.state)
		if !brk {
			continue
		}
		switch t.status(units) {
		case skip:
			t.start = t.end
		case merge:
		case emit:
			return t.token(units), true
		}
	}

	if t.status(units) == skip {
		return Token{}, false
	}
	return t.token(units), true
}

// status classifies the pending span [start, end) at a model break.
func (t *Tokenizer) status(units []uint16) status {
	if t.end < t.sentEnd && isHighSurrogate(units[t.end-1]) && isLowSurrogate(units[t.end]) {
		return merge
	}

	ch := units[t.start]
	switch {
	case isLetter(ch):
		return emit
	case isHighSurrogate(ch):
		return merge
	case isDigit(ch):
		if t.end < t.sentEnd && isDigit(units[t.end]) {
			return merge
		}
		return emit
	default:
		return skip
	}
}

func (t *Tokenizer) token(units []uint16) Token {
	return Token{
		Text:  string(utf16.Decode(units[t.start:t.end])),
		Start: t.offset(t.buf.ByteOffset(t.start)),
		End:   t.offset(t.buf.ByteOffset(t.end)),
	}
}

func (t *Tokenizer) offset(n int) int {
	if t.correct == nil {
		return n
	}
	return t.correct(n)
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

func isLetter(u uint16) bool {
	return !utf16.IsSurrogate(rune(u)) && unicode.IsLetter(rune(u))
}

func isDigit(u uint16) bool {
	return !utf16.IsSurrogate(rune(u)) && unicode.IsDigit(rune(u))
}

// Tokenize returns every token of text.
func Tokenize(text string, opts ...Option) []Token {
	var tokens []Token
	for tok, err := range New(strings.NewReader(text), opts...).All() {
		if err != nil {
			// strings.Reader does not fail
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Words returns the text of every token of text.
func Words(text string, opts ...Option) []string {
	return lo.Map(Tokenize(text, opts...), func(tok Token, _ int) string {
		return tok.Text
	})
}
