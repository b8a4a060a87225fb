package huffman

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Path represents the sequence of branch choices from the root of a tree to
// one of its nodes.  Each byte is '0' (left) or '1' (right).  The empty Path
// denotes the root itself.
type Path string

// ParsePath validates s and converts it to a Path.
func ParsePath(s string) (Path, error) {
	for i := 0; i < len(s); i++ {
		if !isPathByte(s[i]) {
			return "", errors.Errorf("invalid character %q at offset %d", s[i], i)
		}
	}
	return Path(s), nil
}

// Len returns the number of bits in this Path.
func (p Path) Len() int {
	return len(p)
}

// Bit returns the i'th bit of this Path as 0 or 1.
func (p Path) Bit(i int) uint8 {
	return p[i] - '0'
}

// Append returns the Path extended by one bit.
func (p Path) Append(bit uint8) Path {
	if bit == 0 {
		return p + "0"
	}
	return p + "1"
}

// String returns the quoted string representation of this Path.
func (p Path) String() string {
	return strconv.Quote(string(p))
}

var _ fmt.Stringer = Path("")
