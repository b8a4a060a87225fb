package huffman

import (
	"math"
)

func isPathByte(ch byte) bool {
	return ch == '0' || ch == '1'
}

// addWeight is a saturating addition.
func addWeight(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
