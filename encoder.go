package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// BitSink accepts bits one at a time.
type BitSink interface {
	// WriteBit appends one bit, which is 0 or 1.
	WriteBit(bit uint8) error
}

// Encoder translates symbols into the bit paths of a Tree.  It is the
// inverse of Tree.Translate.
type Encoder struct {
	paths  [NumSymbols]Path
	known  [NumSymbols]bool
	single bool
}

// NewEncoder constructs an Encoder for the given Tree.
func NewEncoder(t *Tree) *Encoder {
	e := &Encoder{}
	for symbol, path := range t.Paths() {
		e.paths[symbol] = path
		e.known[symbol] = true
	}
	_, e.single = t.root.(*Leaf)
	return e
}

// BitLength returns the number of bits Encode writes for the given symbol,
// or -1 if the symbol is not in the tree.
func (e *Encoder) BitLength(symbol Symbol) int {
	if !symbol.IsValid() || !e.known[symbol] {
		return -1
	}
	if e.single {
		return 1
	}
	return e.paths[symbol].Len()
}

// Encode writes the path for the given symbol to dst.  For a single-leaf
// tree, whose only path is empty, Encode writes a single 0 bit so that
// Translate sees one bit per symbol.
func (e *Encoder) Encode(symbol Symbol, dst BitSink) error {
	if !symbol.IsValid() || !e.known[symbol] {
		return errors.Wrapf(ErrInvalidSymbol, "symbol %d is not in the tree", symbol)
	}
	if e.single {
		return errors.WithStack(dst.WriteBit(0))
	}
	path := e.paths[symbol]
	for i := 0; i < path.Len(); i++ {
		if err := dst.WriteBit(path.Bit(i)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// EncodeAll encodes every byte of p and returns the number of bits written.
func (e *Encoder) EncodeAll(p []byte, dst BitSink) (int64, error) {
	var total int64
	for _, ch := range p {
		if err := e.Encode(Symbol(ch), dst); err != nil {
			return total, err
		}
		total += int64(e.BitLength(Symbol(ch)))
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if e.known[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.paths[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// CountWeights reads r to the end and returns the number of occurrences of
// each byte value, indexed by Symbol.  The result is suitable for NewTree.
func CountWeights(r io.Reader) ([]int64, error) {
	weights := make([]int64, NumSymbols)
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return weights, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "huffman: failed to count weights")
		}
		weights[ch]++
	}
}
