package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-tinyseg"
)

func TestNewPool_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		pool := NewPool(size)
		assert.Equal(t, 1, pool.Size(), "size %d", size)
		require.NoError(t, pool.Close())
	}
}

func TestPool_AcquireRelease(t *testing.T) {
	pool := NewPool(2)
	defer func() { _ = pool.Close() }()

	ctx := context.Background()
	s1, err := pool.Acquire(ctx)
	require.NoError(t, err)
	s2, err := pool.Acquire(ctx)
	require.NoError(t, err)
	assert.NotSame(t, s1, s2)

	// Pool is empty; a third Acquire must honour the deadline.
	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = pool.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	pool.Release(s1)
	pool.Release(s2)
	pool.Release(nil)
}

func TestPool_Closed(t *testing.T) {
	pool := NewPool(1)
	s, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, pool.Close())
	require.NoError(t, pool.Close(), "second Close")

	_, err = pool.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrPoolClosed)

	// A session released after Close is closed with it.
	pool.Release(s)
	_, err = s.Tokenize(context.Background(), "東京")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	pool := NewPool(3)
	defer func() { _ = pool.Close() }()

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		maxSeen atomic.Int32
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := pool.Acquire(context.Background())
			if err != nil {
				t.Error(err)
				return
			}
			n := active.Add(1)
			for {
				m := maxSeen.Load()
				if n <= m || maxSeen.CompareAndSwap(m, n) {
					break
				}
			}
			_, err = s.Tokenize(context.Background(), "私の名前は中野です")
			assert.NoError(t, err)
			active.Add(-1)
			pool.Release(s)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxSeen.Load(), int32(3))
}

func TestPool_TokenizeAll(t *testing.T) {
	pool := NewPool(2)
	defer func() { _ = pool.Close() }()

	docs := []string{
		"私の名前は中野です",
		"",
		"page123and456",
		"東京都に住む",
	}
	got, err := pool.TokenizeAll(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, got, len(docs))

	for i, doc := range docs {
		assert.Equal(t, tinyseg.Tokenize(doc), got[i], "document %d", i)
	}
}

func TestPool_TokenizeAll_Cancelled(t *testing.T) {
	pool := NewPool(2)
	defer func() { _ = pool.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.TokenizeAll(ctx, []string{"東京", "大阪"})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSession_Tokenize(t *testing.T) {
	s := NewSession(tinyseg.WithBufferSize(8))
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	first, err := s.Tokenize(ctx, "私の名前は中野です")
	require.NoError(t, err)
	second, err := s.Tokenize(ctx, "私の名前は中野です")
	require.NoError(t, err)

	assert.Equal(t, first, second, "session state leaked between documents")
	assert.Equal(t, tinyseg.Tokenize("私の名前は中野です", tinyseg.WithBufferSize(8)), first)
}

func TestSession_CancelledContext(t *testing.T) {
	s := NewSession()
	defer func() { _ = s.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Tokenize(ctx, "東京")
	assert.ErrorIs(t, err, context.Canceled)
}
