package huffman

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// BitSource supplies bits one at a time.
type BitSource interface {
	// HasNextBit reports whether at least one more bit is available.
	HasNextBit() bool

	// NextBit consumes and returns the next bit, which is 0 or 1.
	NextBit() (uint8, error)
}

// Translate decodes bits from src and writes the decoded symbols to dst, one
// byte per symbol, until src reports that no more bits are available.  It
// returns the number of symbols written.
//
// Each symbol starts from the root; every bit consumed moves to the left
// child (0) or the right child (1) until a leaf is reached.  If src runs out
// of bits before reaching a leaf, Translate returns ErrTruncatedStream; the
// symbols decoded before that point have already been written to dst.
//
// If the tree consists of a single leaf, every code is empty.  In that case
// Translate writes one symbol each time src.HasNextBit() returns true, so
// src alone decides the symbol count.  One bit is taken and ignored per
// symbol so that a source whose HasNextBit depends on consumption stops; if
// that read reports io.EOF, the symbol is written anyway.
//
func (t *Tree) Translate(src BitSource, dst io.ByteWriter) (int64, error) {
	var count int64
	for src.HasNextBit() {
		symbol, err := t.next(src)
		if err != nil {
			return count, err
		}
		if err := dst.WriteByte(byte(symbol)); err != nil {
			return count, errors.Wrap(err, "huffman: failed to write symbol")
		}
		count++
	}
	return count, nil
}

// Decode is a convenience wrapper around Translate that collects the
// decoded symbols into a byte slice.
func (t *Tree) Decode(src BitSource) ([]byte, error) {
	var buf bytes.Buffer
	_, err := t.Translate(src, &buf)
	return buf.Bytes(), err
}

// next walks from the root to a leaf.  The caller has already checked that
// src has at least one bit.
func (t *Tree) next(src BitSource) (Symbol, error) {
	if leaf, ok := t.root.(*Leaf); ok {
		// The code is empty.  Take one bit so that sources which count
		// consumption run dry, but a source with nothing to give is fine.
		_, err := src.NextBit()
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return InvalidSymbol, errors.Wrap(err, "huffman: failed to read bit")
		}
		return leaf.symbol, nil
	}

	node := t.root
	depth := 0
	for {
		switch n := node.(type) {
		case *Leaf:
			return n.symbol, nil
		case *Internal:
			if depth != 0 && !src.HasNextBit() {
				return InvalidSymbol, errors.Wrapf(ErrTruncatedStream, "stream ended after %d bits of a code", depth)
			}
			bit, err := src.NextBit()
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return InvalidSymbol, errors.Wrapf(ErrTruncatedStream, "stream ended after %d bits of a code", depth)
			}
			if err != nil {
				return InvalidSymbol, errors.Wrap(err, "huffman: failed to read bit")
			}
			node = n.Child(bit)
			depth++
		}
	}
}
