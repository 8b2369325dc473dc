// Package charbuf implements the fixed-size UTF-16 refill buffer the
// tokenizer scans.
//
// A refill keeps the unconsumed tail of the previous fill, tops the buffer
// up from the source and then exposes only a prefix that ends on a hard
// line or paragraph separator, so that sentence breaking never sees a
// sentence cut in half by the buffer edge. When no separator exists the
// whole buffer is exposed anyway (a forced cut).
package charbuf

import (
	"errors"
	"io"
)

// DefaultSize is the buffer capacity in code units.
const DefaultSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

// Reader is a source of UTF-16 code units. It follows io.Reader
// conventions: io.EOF marks the end and may accompany a final n > 0.
type Reader interface {
	ReadUnits(p []uint16) (n int, err error)
}

// Buffer holds a window of the input. Positions in [0, Usable()) may be
// segmented; [Usable(), Len()) is kept for the next fill.
type Buffer struct {
	src    Reader
	buf    []uint16
	length int
	usable int
	offset int
	eof    bool
	forced bool

	// UTF-8 accounting: base is the byte length of every retired unit,
	// cur/curBytes a forward cursor inside buf.
	base     int
	cur      int
	curBytes int
}

// New returns an empty buffer of the given capacity reading from src.
// Sizes below 2 fall back to DefaultSize.
func New(src Reader, size int) *Buffer {
	if size < 2 {
		size = DefaultSize
	}
	return &Buffer{src: src, buf: make([]uint16, size)}
}

// Reset rewinds the buffer onto a new source, keeping its storage.
func (b *Buffer) Reset(src Reader) {
	*b = Buffer{src: src, buf: b.buf}
}

// Len is the number of valid units in the buffer.
func (b *Buffer) Len() int { return b.length }

// Usable is the length of the prefix that may be segmented.
func (b *Buffer) Usable() int { return b.usable }

// Cap is the buffer capacity in units.
func (b *Buffer) Cap() int { return len(b.buf) }

// Offset is the number of units retired before the start of the buffer.
func (b *Buffer) Offset() int { return b.offset }

// Forced reports whether the last refill had to expose the whole buffer
// because no separator was found.
func (b *Buffer) Forced() bool { return b.forced }

// Units returns the valid content, Len() units long. The slice aliases the
// buffer and is invalidated by the next Refill.
func (b *Buffer) Units() []uint16 { return b.buf[:b.length] }

// Refill retires the usable prefix, slides the leftover to the front and
// reads until the buffer is full or the source is exhausted. A returned
// error other than io.EOF comes from the source; io.EOF itself is never
// returned, exhaustion shows up as Len() == 0 after a refill.
func (b *Buffer) Refill() error {
	b.base = b.ByteOffset(b.usable)
	b.cur, b.curBytes = 0, 0

	b.offset += b.usable
	leftover := b.length - b.usable
	copy(b.buf, b.buf[b.usable:b.length])
	b.length = leftover
	b.usable = 0
	b.forced = false

	err := b.fill()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if b.eof {
		b.usable = b.length
		return nil
	}
	b.usable = b.safeEnd()
	if b.usable < 0 {
		b.usable = b.length
		b.forced = true
		// keep a trailing high surrogate with its low half
		if b.length > 1 && isHighSurrogate(b.buf[b.length-1]) {
			b.usable--
		}
	}
	return nil
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }

func (b *Buffer) fill() error {
	if b.eof || b.src == nil {
		b.eof = true
		return nil
	}
	empty := 0
	for b.length < len(b.buf) {
		n, err := b.src.ReadUnits(b.buf[b.length:])
		if n < 0 || n > len(b.buf)-b.length {
			return errors.New("charbuf: invalid read count")
		}
		b.length += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				b.eof = true
			}
			return err
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
	return nil
}

// safeEnd returns one past the last separator, or -1 if there is none.
func (b *Buffer) safeEnd() int {
	for i := b.length - 1; i >= 0; i-- {
		if IsSafeEnd(b.buf[i]) {
			return i + 1
		}
	}
	return -1
}

// IsSafeEnd reports whether u is a hard line or paragraph separator.
func IsSafeEnd(u uint16) bool {
	switch u {
	case '\r', '\n', 0x0085, 0x2028, 0x2029:
		return true
	}
	return false
}

// ByteOffset returns the UTF-8 byte offset in the whole input of buffer
// position pos. Calls with non-decreasing pos are amortized constant time.
func (b *Buffer) ByteOffset(pos int) int {
	if pos < b.cur {
		b.cur, b.curBytes = 0, 0
	}
	for ; b.cur < pos; b.cur++ {
		b.curBytes += UTF8Len(b.buf[b.cur])
	}
	return b.base + b.curBytes
}

// UTF8Len is the number of UTF-8 bytes a code unit accounts for. Each half
// of a surrogate pair counts two, so a pair adds up to its four bytes.
func UTF8Len(u uint16) int {
	switch {
	case u < 0x80:
		return 1
	case u < 0x800:
		return 2
	case u >= 0xD800 && u <= 0xDFFF:
		return 2
	default:
		return 3
	}
}
