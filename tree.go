package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Tree is an immutable Huffman tree.  The zero value is not usable; obtain a
// Tree from NewTree or Load.
type Tree struct {
	root        Node
	numLeaves   int
	numInternal int
	minDepth    int
	maxDepth    int
}

func newTree(root Node) *Tree {
	t := &Tree{root: root}
	var hasMinMax bool
	t.Walk(func(node Node, path Path) bool {
		if _, ok := node.(*Internal); ok {
			t.numInternal++
			return true
		}
		t.numLeaves++
		depth := path.Len()
		if !hasMinMax {
			hasMinMax = true
			t.minDepth = depth
			t.maxDepth = depth
		} else if t.minDepth > depth {
			t.minDepth = depth
		} else if t.maxDepth < depth {
			t.maxDepth = depth
		}
		return true
	})
	return t
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.root
}

// Weight returns the weight of the root node.
func (t *Tree) Weight() uint64 {
	return t.root.Weight()
}

// NumLeaves returns the number of leaves, i.e. the size of the alphabet.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// NumInternal returns the number of internal nodes.  It is always
// NumLeaves() - 1.
func (t *Tree) NumInternal() int {
	return t.numInternal
}

// MinDepth is the bit length of the shortest code.
func (t *Tree) MinDepth() int {
	return t.minDepth
}

// MaxDepth is the bit length of the longest code.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Walk visits every node in preorder, left subtree before right subtree,
// passing the Path from the root to that node.  If fn returns false for an
// *Internal, its children are skipped.
//
// Walk uses an explicit stack, so its Go stack usage does not depend on the
// depth of the tree.
//
func (t *Tree) Walk(fn func(node Node, path Path) bool) {
	type stackItem struct {
		node Node
		path Path
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{t.root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]

		if !fn(top.node, top.path) {
			continue
		}
		if n, ok := top.node.(*Internal); ok {
			// Push right first so that left is visited first.
			stack = append(stack, stackItem{n.right, top.path.Append(1)})
			stack = append(stack, stackItem{n.left, top.path.Append(0)})
		}
	}
}

// Paths returns the Path of every leaf, keyed by symbol.
func (t *Tree) Paths() map[Symbol]Path {
	out := make(map[Symbol]Path, t.numLeaves)
	t.Walk(func(node Node, path Path) bool {
		if leaf, ok := node.(*Leaf); ok {
			out[leaf.symbol] = path
		}
		return true
	})
	return out
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	paths := t.Paths()
	symbols := make([]Symbol, 0, len(paths))
	for symbol := range paths {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tMinDepth() = %d\n", t.minDepth)
	fmt.Fprintf(&buf, "\tMaxDepth() = %d\n", t.maxDepth)
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tPath(%d) = %s\n", symbol, paths[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, with code lengths of %d .. %d bits)", t.numLeaves, t.minDepth, t.maxDepth)
}

var _ fmt.Stringer = (*Tree)(nil)
