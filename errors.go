package tinyseg

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrRead wraps a failure of the underlying input. Tokenization stops
	// at the first such failure and every later call reports it again.
	ErrRead = errors.New("tinyseg: reading input")
)
