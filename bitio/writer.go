package bitio

import (
	"encoding/binary"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Writer packs bits into bytes, most significant bit first, and writes them
// to an io.Writer.  Write errors are stored and reported by Flush or Err.
// Flush pads the last byte with zero bits; the Writer must not be used
// after Flush.
type Writer struct {
	w      *bitio.Writer
	count  int64
	closed bool
	err    error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(w)}
}

// WriteHeader writes numBits as the 8-byte big-endian bit count header.
func WriteHeader(w io.Writer, numBits int64) error {
	return errors.Wrap(binary.Write(w, binary.BigEndian, uint64(numBits)), "bitio: failed to write header")
}

// WriteBit appends one bit.  Any nonzero value is written as 1.
func (w *Writer) WriteBit(bit uint8) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		w.err = errors.New("bitio: write after Flush")
		return w.err
	}
	if err := w.w.WriteBool(bit != 0); err != nil {
		w.err = errors.Wrap(err, "bitio: failed to write")
		return w.err
	}
	w.count++
	return nil
}

// Len returns the number of bits written so far, excluding padding.
func (w *Writer) Len() int64 {
	return w.count
}

// Flush writes any partial byte, padded with zero bits, and flushes the
// underlying buffer.
func (w *Writer) Flush() error {
	if w.err != nil || w.closed {
		return w.err
	}
	w.closed = true
	if _, err := w.w.Align(); err != nil {
		w.err = errors.Wrap(err, "bitio: failed to write")
		return w.err
	}
	if err := w.w.Close(); err != nil {
		w.err = errors.Wrap(err, "bitio: failed to write")
	}
	return w.err
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}
