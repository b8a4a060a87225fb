package bitio

import (
	"encoding/binary"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// HeaderSize is the size in bytes of the bit count header.
const HeaderSize = 8

// Reader reads a bounded number of bits from an io.Reader.
type Reader struct {
	r     *bitio.Reader
	limit int64
	pos   int64
	err   error
}

// NewReader returns a Reader that yields exactly numBits bits from r.
func NewReader(r io.Reader, numBits int64) *Reader {
	return &Reader{r: bitio.NewReader(r), limit: numBits}
}

// ReadHeader reads the 8-byte big-endian bit count from r and returns a
// Reader for the bits that follow.
func ReadHeader(r io.Reader) (*Reader, error) {
	var numBits uint64
	if err := binary.Read(r, binary.BigEndian, &numBits); err != nil {
		return nil, errors.Wrap(err, "bitio: failed to read header")
	}
	if numBits > 1<<62 {
		return nil, errors.Errorf("bitio: implausible bit count %d", numBits)
	}
	return NewReader(r, int64(numBits)), nil
}

// HasNextBit reports whether another bit can be read.  It returns false once
// numBits bits have been read, or after a read error.
func (r *Reader) HasNextBit() bool {
	return r.err == nil && r.pos < r.limit
}

// NextBit returns the next bit as 0 or 1.  Reading past the end yields
// io.EOF; an underlying stream shorter than promised yields
// io.ErrUnexpectedEOF.
func (r *Reader) NextBit() (uint8, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.pos >= r.limit {
		return 0, io.EOF
	}
	b, err := r.r.ReadBool()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		r.err = err
		return 0, err
	}
	r.pos++
	if b {
		return 1, nil
	}
	return 0, nil
}

// Remaining returns the number of bits not yet read.
func (r *Reader) Remaining() int64 {
	return r.limit - r.pos
}

// Trailing counts the whole bytes left in the underlying stream after the
// byte holding the last bit, consuming them.  It must be called only once
// HasNextBit is false.  A well-formed bit file has none.
func (r *Reader) Trailing() (int64, error) {
	var n int64
	r.r.Align()
	for {
		_, err := r.r.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrap(err, "bitio: failed to read")
		}
		n++
	}
}
