package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-tinyseg"
)

// Pool manages a fixed set of sessions for concurrent tokenization.
type Pool struct {
	sessions chan *Session
	size     int
	mu       sync.Mutex
	closed   bool
}

// NewPool creates a pool of size sessions, all built with opts. Sizes
// below 1 are treated as 1.
func NewPool(size int, opts ...tinyseg.Option) *Pool {
	if size <= 0 {
		size = 1
	}

	pool := &Pool{
		sessions: make(chan *Session, size),
		size:     size,
	}
	for range size {
		pool.sessions <- NewSession(opts...)
	}
	return pool
}

// Acquire gets a session from the pool, blocking if none available.
// Respects context cancellation. Returns ErrPoolClosed if the pool is
// closed.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	select {
	case session, ok := <-p.sessions:
		if !ok {
			return nil, ErrPoolClosed
		}
		return session, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a session to the pool.
func (p *Pool) Release(s *Session) {
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		_ = s.Close() // Pool closed; clean up session
		return
	}

	select {
	case p.sessions <- s:
	default:
		_ = s.Close() // Pool full; not one of ours
	}
}

// Close closes all idle sessions. Sessions still checked out are closed
// when released.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sessions)
	p.mu.Unlock()

	var errs []error
	for session := range p.sessions {
		if err := session.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.size
}

// TokenizeAll tokenizes docs concurrently, at most Size() at a time. The
// result is in input order. The first failure cancels the remaining work.
func (p *Pool) TokenizeAll(ctx context.Context, docs []string) ([][]tinyseg.Token, error) {
	out := make([][]tinyseg.Token, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)
	for i, doc := range docs {
		g.Go(func() error {
			session, err := p.Acquire(ctx)
			if err != nil {
				return err
			}
			defer p.Release(session)

			tokens, err := session.Tokenize(ctx, doc)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			out[i] = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
