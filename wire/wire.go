// Package wire encodes tokens as length-delimited protobuf records, so a
// token stream can be handed to another process without a schema
// compiler on either side.
//
// Each record is a varint byte length followed by a message with
//
//	1: text  (bytes)
//	2: start (varint)
//	3: end   (varint)
//
// Decoders skip fields they do not know.
package wire

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jamesainslie/go-tinyseg"
)

const (
	fieldText  protowire.Number = 1
	fieldStart protowire.Number = 2
	fieldEnd   protowire.Number = 3
)

// maxRecordSize bounds a single record; larger length prefixes are
// treated as corruption.
const maxRecordSize = 1 << 24

// ErrMalformedRecord indicates a truncated or undecodable record.
var ErrMalformedRecord = errors.New("wire: malformed token record")

// AppendToken appends the message encoding of tok, without length prefix.
func AppendToken(b []byte, tok tinyseg.Token) []byte {
	b = protowire.AppendTag(b, fieldText, protowire.BytesType)
	b = protowire.AppendString(b, tok.Text)
	b = protowire.AppendTag(b, fieldStart, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(tok.Start))
	b = protowire.AppendTag(b, fieldEnd, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(tok.End))
	return b
}

// ParseToken decodes a single message produced by AppendToken.
func ParseToken(b []byte) (tinyseg.Token, error) {
	var tok tinyseg.Token
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return tinyseg.Token{}, malformed(n)
		}
		b = b[n:]

		switch {
		case num == fieldText && typ == protowire.BytesType:
			var v []byte
			v, n = protowire.ConsumeBytes(b)
			tok.Text = string(v)
		case num == fieldStart && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			tok.Start = int(v)
		case num == fieldEnd && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			tok.End = int(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return tinyseg.Token{}, malformed(n)
		}
		b = b[n:]
	}
	return tok, nil
}

func malformed(n int) error {
	return fmt.Errorf("%w: %w", ErrMalformedRecord, protowire.ParseError(n))
}

// Encoder writes length-delimited token records.
type Encoder struct {
	w    io.Writer
	body []byte
	rec  []byte
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one record.
func (e *Encoder) Encode(tok tinyseg.Token) error {
	e.body = AppendToken(e.body[:0], tok)
	e.rec = protowire.AppendVarint(e.rec[:0], uint64(len(e.body)))
	e.rec = append(e.rec, e.body...)
	if _, err := e.w.Write(e.rec); err != nil {
		return fmt.Errorf("writing token record: %w", err)
	}
	return nil
}

// Copy encodes every token of seq and returns how many were written. It
// stops at the first error from seq or from the writer.
func (e *Encoder) Copy(seq iter.Seq2[tinyseg.Token, error]) (int, error) {
	n := 0
	for tok, err := range seq {
		if err != nil {
			return n, err
		}
		if err := e.Encode(tok); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Decoder reads length-delimited token records.
type Decoder struct {
	r   *bufio.Reader
	buf []byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the next record. It returns io.EOF at a clean end of input
// and ErrMalformedRecord for a truncated or corrupt record.
func (d *Decoder) Decode() (tinyseg.Token, error) {
	size, err := binary.ReadUvarint(d.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return tinyseg.Token{}, io.EOF
		}
		return tinyseg.Token{}, fmt.Errorf("%w: reading length: %w", ErrMalformedRecord, err)
	}
	if size > maxRecordSize {
		return tinyseg.Token{}, fmt.Errorf("%w: record of %d bytes", ErrMalformedRecord, size)
	}

	if cap(d.buf) < int(size) {
		d.buf = make([]byte, size)
	}
	d.buf = d.buf[:size]
	if _, err := io.ReadFull(d.r, d.buf); err != nil {
		return tinyseg.Token{}, fmt.Errorf("%w: reading body: %w", ErrMalformedRecord, err)
	}
	return ParseToken(d.buf)
}

// All returns an iterator over the remaining records. Iteration stops
// after the first error, which is yielded; io.EOF is not.
func (d *Decoder) All() iter.Seq2[tinyseg.Token, error] {
	return func(yield func(tinyseg.Token, error) bool) {
		for {
			tok, err := d.Decode()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}
