package tinyseg

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/jamesainslie/go-tinyseg/internal/charbuf"
	"github.com/jamesainslie/go-tinyseg/sentence"
)

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	bufferSize int
	locale     language.Tag
	breaker    sentence.Factory
	correct    func(int) int
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		bufferSize: charbuf.DefaultSize,
		locale:     language.Japanese,
		logger:     slog.Default(),
	}
}

// WithBufferSize sets the read buffer capacity in UTF-16 code units
// (default: 4096). A sentence longer than the buffer with no line break in
// it is cut at the buffer edge.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.bufferSize = n
		}
	}
}

// WithLocale selects the sentence breaker registered for the closest
// matching locale (default: Japanese).
func WithLocale(tag language.Tag) Option {
	return func(c *config) {
		c.locale = tag
	}
}

// WithSentenceBreaker overrides locale based breaker selection.
func WithSentenceBreaker(f sentence.Factory) Option {
	return func(c *config) {
		if f != nil {
			c.breaker = f
		}
	}
}

// WithOffsetCorrector maps token offsets back to positions in text that
// was rewritten before tokenization. The function must be monotonic.
func WithOffsetCorrector(fn func(int) int) Option {
	return func(c *config) {
		c.correct = fn
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
