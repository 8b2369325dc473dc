package analysis

import "github.com/jamesainslie/go-tinyseg"

// Option configures the standard Japanese analyzer.
type Option func(*config)

type config struct {
	keywords  []string
	stopWords []string
	tokenizer []tinyseg.Option
}

func defaultConfig() config {
	return config{stopWords: EnglishStopWords}
}

// WithKeywords protects terms from stemming.
func WithKeywords(words ...string) Option {
	return func(c *config) {
		c.keywords = append(c.keywords, words...)
	}
}

// WithStopWords replaces the stop word list (default: EnglishStopWords).
func WithStopWords(words ...string) Option {
	return func(c *config) {
		c.stopWords = words
	}
}

// WithTokenizerOptions passes options to the underlying tokenizer.
func WithTokenizerOptions(opts ...tinyseg.Option) Option {
	return func(c *config) {
		c.tokenizer = append(c.tokenizer, opts...)
	}
}
