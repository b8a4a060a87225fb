package huffman

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Save writes the code table for this Tree to the given writer.  For each
// leaf, in preorder with left subtrees before right subtrees, Save writes two
// lines: the leaf's Symbol in decimal, then its Path (which is empty for a
// single-leaf tree).  Internal nodes are not written.
func (t *Tree) Save(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	t.Walk(func(node Node, path Path) bool {
		if leaf, ok := node.(*Leaf); ok {
			bw.WriteString(strconv.Itoa(int(leaf.symbol)))
			bw.WriteByte('\n')
			bw.WriteString(string(path))
			bw.WriteByte('\n')
		}
		return true
	})
	err := bw.Flush()
	return cw.n, errors.WithStack(err)
}

// Load reconstructs a Tree from a code table written by Save.  Pairs may
// appear in any order; the tree shape is derived purely from the paths.
// Node weights are not stored in the code table, so every node of the
// returned Tree has a weight of 0.
//
// Any problem with the input yields an error matching ErrMalformedTable (a
// *TableError), except that an input with no pairs at all yields
// ErrEmptyAlphabet.  No partial Tree is ever returned.
//
func Load(r io.Reader) (*Tree, error) {
	var b tableBuilder
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		symbolLine := strings.TrimSuffix(sc.Text(), "\r")
		value, err := strconv.Atoi(symbolLine)
		if err != nil {
			return nil, malformedf(lineNum, nil, "symbol %q is not a decimal integer", symbolLine)
		}
		symbol := Symbol(value)
		if value < 0 || value > int(MaxSymbol) {
			return nil, malformedf(lineNum, ErrInvalidSymbol, "symbol %d out of range 0 .. %d", value, MaxSymbol)
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, scanError(err, lineNum+1)
			}
			return nil, malformedf(lineNum, nil, "symbol %d has no path line", symbol)
		}
		lineNum++
		path, err := ParsePath(strings.TrimSuffix(sc.Text(), "\r"))
		if err != nil {
			return nil, malformedf(lineNum, nil, "path for symbol %d: %v", symbol, err)
		}

		if err := b.insert(symbol, path, lineNum); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, scanError(err, lineNum+1)
	}
	return b.finish(lineNum)
}

// scanError converts a bufio.Scanner failure at the given line.  A line too
// long to scan cannot be a valid symbol or path, so it is malformed input
// rather than an I/O problem.
func scanError(err error, lineNum int) error {
	if err == bufio.ErrTooLong {
		return malformedf(lineNum, err, "line longer than %d bytes", bufio.MaxScanTokenSize)
	}
	return errors.Wrap(err, "huffman: failed to read code table")
}

// tableBuilder accumulates (symbol, path) pairs into a tree.  Nodes are
// mutated only while the builder owns them; finish hands them to a Tree.
type tableBuilder struct {
	root  Node
	seen  [NumSymbols]bool
	count int
}

func (b *tableBuilder) insert(symbol Symbol, path Path, lineNum int) error {
	if b.seen[symbol] {
		return malformedf(lineNum, nil, "duplicate symbol %d", symbol)
	}
	b.seen[symbol] = true
	b.count++

	leaf := &Leaf{symbol: symbol}
	if path.Len() == 0 {
		if b.root != nil {
			return malformedf(lineNum, nil, "empty path for symbol %d in a table with more than one entry", symbol)
		}
		b.root = leaf
		return nil
	}

	if b.root == nil {
		b.root = &Internal{}
	}
	parent, ok := b.root.(*Internal)
	if !ok {
		return malformedf(lineNum, nil, "path %s for symbol %d in a table with an empty path", path, symbol)
	}

	last := path.Len() - 1
	for i := 0; i < last; i++ {
		slot := parent.slot(path.Bit(i))
		switch child := (*slot).(type) {
		case nil:
			n := &Internal{}
			*slot = n
			parent = n
		case *Internal:
			parent = child
		case *Leaf:
			return malformedf(lineNum, nil, "path %s for symbol %d passes through symbol %d", path, symbol, child.symbol)
		}
	}

	slot := parent.slot(path.Bit(last))
	switch child := (*slot).(type) {
	case nil:
		*slot = leaf
	case *Internal:
		return malformedf(lineNum, nil, "path %s for symbol %d is a prefix of another path", path, symbol)
	case *Leaf:
		return malformedf(lineNum, nil, "path %s for symbol %d is already taken by symbol %d", path, symbol, child.symbol)
	}
	return nil
}

func (b *tableBuilder) finish(lineNum int) (*Tree, error) {
	if b.root == nil {
		return nil, errors.WithStack(ErrEmptyAlphabet)
	}

	var missing Path
	var incomplete bool
	walkNodes(b.root, func(n *Internal, path Path) bool {
		switch {
		case n.left == nil:
			missing = path.Append(0)
		case n.right == nil:
			missing = path.Append(1)
		default:
			return true
		}
		incomplete = true
		return false
	})
	if incomplete {
		return nil, malformedf(lineNum, nil, "no symbol for path %s", missing)
	}

	t := newTree(b.root)
	assert.Assertf(t.numLeaves == b.count, "tree has %d leaves, table has %d entries", t.numLeaves, b.count)
	return t, nil
}

func (n *Internal) slot(bit uint8) *Node {
	if bit == 0 {
		return &n.left
	}
	return &n.right
}

// walkNodes visits the internal nodes of a possibly incomplete tree in
// preorder until fn returns false.
func walkNodes(root Node, fn func(n *Internal, path Path) bool) {
	type stackItem struct {
		node *Internal
		path Path
	}

	n, ok := root.(*Internal)
	if !ok {
		return
	}
	stack := []stackItem{{n, ""}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.node, top.path) {
			return
		}
		if right, ok := top.node.right.(*Internal); ok {
			stack = append(stack, stackItem{right, top.path.Append(1)})
		}
		if left, ok := top.node.left.(*Internal); ok {
			stack = append(stack, stackItem{left, top.path.Append(0)})
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
