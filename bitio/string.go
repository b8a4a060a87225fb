package bitio

import (
	"io"

	"github.com/pkg/errors"
)

// StringReader yields the bits of a string of '0' and '1' characters.
type StringReader struct {
	bits string
	pos  int
}

// NewStringReader returns a StringReader over s.  Any character other than
// '0' or '1' causes an error when it is reached.
func NewStringReader(s string) *StringReader {
	return &StringReader{bits: s}
}

// HasNextBit reports whether another bit can be read.
func (r *StringReader) HasNextBit() bool {
	return r.pos < len(r.bits)
}

// NextBit returns the next bit as 0 or 1.
func (r *StringReader) NextBit() (uint8, error) {
	if r.pos >= len(r.bits) {
		return 0, io.EOF
	}
	ch := r.bits[r.pos]
	switch ch {
	case '0', '1':
		r.pos++
		return ch - '0', nil
	default:
		return 0, errors.Errorf("bitio: invalid bit %q at offset %d", ch, r.pos)
	}
}

// Consumed returns the number of bits read so far.
func (r *StringReader) Consumed() int {
	return r.pos
}

// StringWriter collects bits as a string of '0' and '1' characters.
type StringWriter struct {
	buf []byte
}

// WriteBit appends one bit.  Any nonzero value is written as '1'.
func (w *StringWriter) WriteBit(bit uint8) error {
	if bit != 0 {
		w.buf = append(w.buf, '1')
	} else {
		w.buf = append(w.buf, '0')
	}
	return nil
}

// String returns the bits written so far.
func (w *StringWriter) String() string {
	return string(w.buf)
}
