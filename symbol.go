package huffman

// Symbol represents a symbol in a byte-sized alphabet.  Valid symbols lie in
// the range 0 .. MaxSymbol inclusive.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(255)

// NumSymbols is the size of the alphabet.
const NumSymbols = int(MaxSymbol) + 1

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol lies within 0 .. MaxSymbol.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}
