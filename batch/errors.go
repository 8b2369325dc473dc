package batch

import "errors"

var (
	// ErrPoolClosed is returned by Acquire after Close.
	ErrPoolClosed = errors.New("batch: pool is closed")

	// ErrClosed is returned when a closed session is used.
	ErrClosed = errors.New("batch: session is closed")
)
