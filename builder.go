package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// NewTree constructs an optimal Huffman tree.  The argument lists the weight
// (i.e. number of occurrences) for each Symbol, one for each Symbol starting
// from 0; any Symbol not represented in the list is assumed to have a weight
// of 0.  Symbols with a weight of 0 or less are omitted from the tree
// entirely.
//
// If exactly one Symbol has a positive weight, the resulting tree consists
// of a single *Leaf whose Path is empty.  If no Symbol has a positive
// weight, NewTree returns ErrEmptyAlphabet.
//
// Equal weights are merged in insertion order: leaves in ascending Symbol
// order first, then internal nodes in the order they were created.  Callers
// should not depend on the exact shape this produces for tied weights.
//
func NewTree(weights []int64) (*Tree, error) {
	if len(weights) > NumSymbols {
		return nil, errors.Wrapf(ErrInvalidSymbol, "%d weights given, max %d", len(weights), NumSymbols)
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]heapItem, 0, len(weights))}
	for symbol, weight := range weights {
		if weight <= 0 {
			continue
		}
		h.list = append(h.list, heapItem{
			node: &Leaf{symbol: Symbol(symbol), weight: uint64(weight)},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}
	if h.Len() == 0 {
		return nil, errors.WithStack(ErrEmptyAlphabet)
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them into
	// a new internal node, and pushing the new node back onto the minheap.
	// The first node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		heap.Push(&h, &Internal{
			weight: addWeight(a.node.Weight(), b.node.Weight()),
			left:   a.node,
			right:  b.node,
		})
	}

	root := heap.Pop(&h).(heapItem).node
	t := newTree(root)
	assert.Assertf(t.numInternal == t.numLeaves-1, "%d internal nodes for %d leaves", t.numInternal, t.numLeaves)
	return t, nil
}

// NewTreeFromMap is like NewTree, but takes the weights as a map.
func NewTreeFromMap(weights map[Symbol]int64) (*Tree, error) {
	list := make([]int64, NumSymbols)
	for symbol, weight := range weights {
		if !symbol.IsValid() {
			return nil, errors.Wrapf(ErrInvalidSymbol, "symbol %d", symbol)
		}
		list[symbol] = weight
	}
	return NewTree(list)
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

// Push accepts either a heapItem or a bare Node; a bare Node is assigned the
// next sequence number.
func (h *nodeHeap) Push(x interface{}) {
	switch v := x.(type) {
	case heapItem:
		h.list = append(h.list, v)
	case Node:
		h.list = append(h.list, heapItem{node: v, seq: h.nextSeq})
		h.nextSeq++
	}
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
