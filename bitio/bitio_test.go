package bitio

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_PacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, bit := range []uint8{1, 0, 1, 1, 0, 0, 0, 1, 1, 1} {
		require.NoError(t, w.WriteBit(bit))
	}
	require.NoError(t, w.Flush())
	assert.Equal(t, int64(10), w.Len())
	assert.Equal(t, []byte{0xb1, 0xc0}, buf.Bytes())
}

func TestReader_Bounded(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xb1, 0xc0}), 10)
	var got []uint8
	for r.HasNextBit() {
		bit, err := r.NextBit()
		require.NoError(t, err)
		got = append(got, bit)
	}
	assert.Equal(t, []uint8{1, 0, 1, 1, 0, 0, 0, 1, 1, 1}, got)
	assert.Equal(t, int64(0), r.Remaining())

	_, err := r.NextBit()
	assert.Equal(t, io.EOF, err)
}

func TestReader_ShortInput(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff}), 12)
	for i := 0; i < 8; i++ {
		_, err := r.NextBit()
		require.NoError(t, err)
	}
	assert.True(t, r.HasNextBit())
	_, err := r.NextBit()
	assert.Equal(t, io.ErrUnexpectedEOF, err)
	assert.False(t, r.HasNextBit())
}

func TestHeader_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, 3))
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBit(1))
	require.NoError(t, w.WriteBit(1))
	require.NoError(t, w.WriteBit(0))
	require.NoError(t, w.Flush())
	assert.Equal(t, HeaderSize+1, buf.Len())

	r, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.Remaining())

	var got []uint8
	for r.HasNextBit() {
		bit, err := r.NextBit()
		require.NoError(t, err)
		got = append(got, bit)
	}
	assert.Equal(t, []uint8{1, 1, 0}, got)
}

func TestReadHeader_Short(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{0, 0, 1}))
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(failingWriter{})
	for i := 0; i < 9; i++ {
		require.NoError(t, w.WriteBit(1))
	}
	assert.Error(t, w.Flush())
	assert.Error(t, w.Err())
	assert.Error(t, w.WriteBit(0))
	assert.Error(t, w.Flush())
}

func TestWriter_WriteAfterFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBit(1))
	require.NoError(t, w.Flush())
	assert.Equal(t, []byte{0x80}, buf.Bytes())
	assert.Error(t, w.WriteBit(1))
	assert.Equal(t, int64(1), w.Len())
}

func TestReader_Trailing(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xa0, 0x01, 0x02}), 3)
	for r.HasNextBit() {
		_, err := r.NextBit()
		require.NoError(t, err)
	}
	n, err := r.Trailing()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStringReaderWriter(t *testing.T) {
	var w StringWriter
	for _, bit := range []uint8{0, 1, 7, 0} {
		require.NoError(t, w.WriteBit(bit))
	}
	assert.Equal(t, "0110", w.String())

	r := NewStringReader("01x")
	bit, err := r.NextBit()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), bit)
	bit, err = r.NextBit()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), bit)
	assert.Equal(t, 2, r.Consumed())
	assert.True(t, r.HasNextBit())
	_, err = r.NextBit()
	assert.Error(t, err)
}
