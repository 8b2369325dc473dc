package wire

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jamesainslie/go-tinyseg"
)

func TestEncoder_RoundTripsTokenizerOutput(t *testing.T) {
	input := "私の名前は中野です。page123and456\n𠮷野家で食べた"
	want := tinyseg.Tokenize(input)
	require.NotEmpty(t, want)

	var buf bytes.Buffer
	n, err := NewEncoder(&buf).Copy(tinyseg.New(strings.NewReader(input)).All())
	require.NoError(t, err)
	assert.Equal(t, len(want), n)

	var got []tinyseg.Token
	for tok, err := range NewDecoder(&buf).All() {
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, want, got)
}

func TestDecoder_EmptyInput(t *testing.T) {
	_, err := NewDecoder(bytes.NewReader(nil)).Decode()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoder_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(tinyseg.Token{Text: "東京", Start: 3, End: 9}))
	full := buf.Bytes()

	for _, cut := range []int{1, 3, len(full) - 1} {
		_, err := NewDecoder(bytes.NewReader(full[:cut])).Decode()
		assert.ErrorIs(t, err, ErrMalformedRecord, "cut at %d", cut)
	}
}

func TestDecoder_OversizedRecord(t *testing.T) {
	rec := protowire.AppendVarint(nil, maxRecordSize+1)
	_, err := NewDecoder(bytes.NewReader(rec)).Decode()
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestParseToken_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = AppendToken(b, tinyseg.Token{Text: "です", Start: 21, End: 27})
	b = protowire.AppendTag(b, 10, protowire.BytesType)
	b = protowire.AppendString(b, "trailing")

	tok, err := ParseToken(b)
	require.NoError(t, err)
	assert.Equal(t, tinyseg.Token{Text: "です", Start: 21, End: 27}, tok)
}

func TestParseToken_BadWireType(t *testing.T) {
	b := protowire.AppendTag(nil, fieldText, protowire.BytesType)
	b = append(b, 0x05) // claims five bytes, has none

	_, err := ParseToken(b)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestEncoder_WriteError(t *testing.T) {
	n, err := NewEncoder(failWriter{}).Copy(tinyseg.New(strings.NewReader("東京都に住む")).All())
	assert.Error(t, err)
	assert.Zero(t, n)
}
