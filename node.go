package huffman

// Node is a node in a Huffman tree.  Every Node is either a *Leaf or an
// *Internal; use a type switch to tell them apart.
//
// Nodes are immutable once their Tree has been constructed.  Each Node is
// owned by exactly one parent (or by the Tree, for the root).
type Node interface {
	// Weight is the node's weight.  For an *Internal it equals the sum of
	// its children's weights, except in trees reconstructed by Load, where
	// weights are not preserved and are always 0.
	Weight() uint64

	isNode()
}

// Leaf is a Node carrying exactly one symbol and no children.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// Symbol returns the symbol carried by this leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the weight of this leaf.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children and no symbol.
type Internal struct {
	weight uint64
	left   Node
	right  Node
}

// Weight returns the weight of this node.
func (n *Internal) Weight() uint64 {
	return n.weight
}

// Left returns the child reached by a 0 bit.
func (n *Internal) Left() Node {
	return n.left
}

// Right returns the child reached by a 1 bit.
func (n *Internal) Right() Node {
	return n.right
}

// Child returns Left for bit 0, and Right for any other bit.
func (n *Internal) Child(bit uint8) Node {
	if bit == 0 {
		return n.left
	}
	return n.right
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
