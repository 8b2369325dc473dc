// Package batch tokenizes many documents concurrently over a fixed pool of
// reusable tokenizers.
package batch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jamesainslie/go-tinyseg"
)

// ctxCheckEvery is how many tokens a session emits between context checks.
const ctxCheckEvery = 1024

// Session wraps one Tokenizer, reset for every document.
type Session struct {
	tok    *tinyseg.Tokenizer
	mu     sync.Mutex
	closed bool
}

// NewSession creates a session whose tokenizer is built with opts.
func NewSession(opts ...tinyseg.Option) *Session {
	return &Session{tok: tinyseg.New(nil, opts...)}
}

// Tokenize returns the tokens of text. Long documents are abandoned with
// ctx.Err() once the context is done.
func (s *Session) Tokenize(ctx context.Context, text string) ([]tinyseg.Token, error) {
	// Check context before taking the lock
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	s.tok.Reset(strings.NewReader(text))
	var tokens []tinyseg.Token
	for tok, err := range s.tok.All() {
		if err != nil {
			return nil, fmt.Errorf("tokenizing: %w", err)
		}
		tokens = append(tokens, tok)
		if len(tokens)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return tokens, nil
}

// Close releases the tokenizer. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.tok = nil
	return nil
}
