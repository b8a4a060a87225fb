package huffman

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned when no symbol has a positive weight, or
	// when a code table contains no entries at all.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrMalformedTable is returned by Load when the code table text cannot
	// be parsed or does not describe a complete prefix-free tree.
	ErrMalformedTable = errors.New("huffman: malformed code table")

	// ErrTruncatedStream is returned by Translate when the BitSource runs
	// out of bits partway through a code.
	ErrTruncatedStream = errors.New("huffman: truncated bit stream")

	// ErrInvalidSymbol is returned when a symbol lies outside 0 .. MaxSymbol
	// or is not present in the tree.
	ErrInvalidSymbol = errors.New("huffman: invalid symbol")
)

// TableError describes a problem found by Load.  It matches
// ErrMalformedTable under errors.Is, and also matches Cause when Cause is
// non-nil.
type TableError struct {
	// Line is the 1-based line number at which the problem was detected.
	Line int

	// Message describes the problem.
	Message string

	// Cause is an optional underlying error.
	Cause error
}

func malformedf(line int, cause error, format string, args ...interface{}) error {
	return errors.WithStack(&TableError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	})
}

// Error returns the error message.
func (e *TableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: line %d: %s: %v", ErrMalformedTable, e.Line, e.Message, e.Cause)
	}
	return fmt.Sprintf("%v: line %d: %s", ErrMalformedTable, e.Line, e.Message)
}

// Is reports whether target is ErrMalformedTable.
func (e *TableError) Is(target error) bool {
	return target == ErrMalformedTable
}

// Unwrap returns Cause.
func (e *TableError) Unwrap() error {
	return e.Cause
}

var _ error = (*TableError)(nil)
