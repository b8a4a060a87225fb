package huffman

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chronos-tachyon/huffcode/bitio"
)

func TestTranslate_EachPath(t *testing.T) {
	tree := makeTestTree(t, classicWeights)
	for symbol, path := range tree.Paths() {
		t.Run(path.String(), func(t *testing.T) {
			src := bitio.NewStringReader(string(path) + "0101")
			var dst bytes.Buffer

			// Decode exactly one symbol.
			sym, err := tree.next(src)
			if err != nil {
				t.Fatalf("next failed: %v", err)
			}
			if sym != symbol {
				t.Errorf("wrong symbol:\n\texpect: %d\n\tactual: %d", symbol, sym)
			}
			if src.Consumed() != path.Len() {
				t.Errorf("wrong bits consumed:\n\texpect: %d\n\tactual: %d", path.Len(), src.Consumed())
			}

			n, err := tree.Translate(bitio.NewStringReader(string(path)), &dst)
			if err != nil {
				t.Fatalf("Translate failed: %v", err)
			}
			if n != 1 || !bytes.Equal(dst.Bytes(), []byte{byte(symbol)}) {
				t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", []byte{byte(symbol)}, dst.Bytes())
			}
		})
	}
}

func TestTranslate_Stream(t *testing.T) {
	tree := makeTestTree(t, classicWeights)

	// f a c e d b f
	bits := "0" + "1100" + "100" + "111" + "101" + "1101" + "0"
	actual, err := tree.Decode(bitio.NewStringReader(bits))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	expect := []byte{5, 0, 2, 4, 3, 1, 5}
	if !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestTranslate_Empty(t *testing.T) {
	tree := makeTestTree(t, classicWeights)
	actual, err := tree.Decode(bitio.NewStringReader(""))
	if err != nil || len(actual) != 0 {
		t.Errorf("expected no output and no error, got %v, %v", actual, err)
	}
}

func TestTranslate_Truncated(t *testing.T) {
	tree := makeTestTree(t, classicWeights)

	// f, then the first two bits of a.
	var dst bytes.Buffer
	n, err := tree.Translate(bitio.NewStringReader("0"+"11"), &dst)
	if !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("expected ErrTruncatedStream, got %v", err)
	}
	if n != 1 || !bytes.Equal(dst.Bytes(), []byte{5}) {
		t.Errorf("wrong output before truncation: %d, %v", n, dst.Bytes())
	}
}

func TestTranslate_SourceError(t *testing.T) {
	tree := makeTestTree(t, classicWeights)
	_, err := tree.Decode(bitio.NewStringReader("1x"))
	if err == nil || errors.Is(err, ErrTruncatedStream) {
		t.Errorf("expected a read error, got %v", err)
	}
}

type failingByteWriter struct{}

func (failingByteWriter) WriteByte(byte) error {
	return io.ErrShortWrite
}

func TestTranslate_SinkError(t *testing.T) {
	tree := makeTestTree(t, classicWeights)
	_, err := tree.Translate(bitio.NewStringReader("0"), failingByteWriter{})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("expected io.ErrShortWrite, got %v", err)
	}
}

// countingSource reports HasNextBit true exactly n times and counts how many
// bits are actually taken.
type countingSource struct {
	n     int
	taken int
}

func (s *countingSource) HasNextBit() bool {
	return s.taken < s.n
}

func (s *countingSource) NextBit() (uint8, error) {
	s.taken++
	return 0, nil
}

// eofSource reports HasNextBit true exactly n times, counting the checks
// rather than the reads, and never has a bit to give.
type eofSource struct {
	n      int
	checks int
}

func (s *eofSource) HasNextBit() bool {
	s.checks++
	return s.checks <= s.n
}

func (s *eofSource) NextBit() (uint8, error) {
	return 0, io.EOF
}

// TestTranslate_SingleLeaf documents that with a one-symbol alphabet, the
// number of decoded symbols is decided entirely by the bit source's
// HasNextBit signal: one symbol per bit, whatever the bits are.
func TestTranslate_SingleLeaf(t *testing.T) {
	tree := loadString(t, "120\n\n")

	src := &countingSource{n: 5}
	actual, err := tree.Decode(src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(actual) != "xxxxx" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "xxxxx", actual)
	}
	if src.taken != 5 {
		t.Errorf("wrong bits consumed:\n\texpect: %d\n\tactual: %d", 5, src.taken)
	}

	// A source whose HasNextBit is independent of NextBit, and which has
	// no bits to hand out: each true still yields one symbol.
	eofSrc := &eofSource{n: 3}
	actual, err = tree.Decode(eofSrc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(actual) != "xxx" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "xxx", actual)
	}

	actual, err = tree.Decode(bitio.NewStringReader("0110"))
	if err != nil || string(actual) != "xxxx" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q (%v)", "xxxx", actual, err)
	}
}

func TestTranslate_Deep(t *testing.T) {
	tree := loadString(t, caterpillarTable())

	bits := strings.Repeat("1", 255) + strings.Repeat("1", 254) + "0"
	actual, err := tree.Decode(bitio.NewStringReader(bits))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(actual, []byte{255, 254}) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", []byte{255, 254}, actual)
	}
}
