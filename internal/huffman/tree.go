// Package huffman implements the canonical-free Huffman coder used to
// compress script files: a priority-queue-built binary tree, a bit-packed
// pre-order tree serialization, and a length-bounded decode.
//
// Grounded on the recursive node-walk coder in the StuffIt Huffman decoder
// (elliotnunn/BeHierarchic internal/sit/huffman.go), generalized from a
// single combined build-and-decode loop into separate build, encode, and
// decode stages, and from its fixed 515-node array into the exact 511-entry
// bit0/bit1 scheme this format requires.
package huffman

import (
	"container/heap"
	"errors"

	"github.com/kamiyado/aoskit/internal/bitio"
)

// ErrSingleSymbol is returned by BuildTree when the input has fewer than two
// distinct byte values. The reference decoder mis-handles this degenerate
// case (spec §9); this implementation refuses it instead.
var ErrSingleSymbol = errors.New("huffman: need at least two distinct byte values")

// node is either a leaf (byte value, probability) or an internal node
// (probability equal to the sum of its children). Every non-root node
// records its parent and which side of that parent it hangs on; leaf codes
// themselves are collected by a top-down walk (see collectCodes).
type node struct {
	prob        uint64
	leaf        bool
	value       byte
	left, right *node
	parent      *node
	rightChild  bool // true if this node is its parent's right child
}

// heapQueue is a container/heap min-priority-queue of nodes ordered by
// probability. Ties resolve however the heap's sift operations land, which
// spec §4.2/§9 documents as observable but not required to match any
// particular reference encoder.
type heapQueue []*node

func (h heapQueue) Len() int            { return len(h) }
func (h heapQueue) Less(i, j int) bool  { return h[i].prob < h[j].prob }
func (h heapQueue) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapQueue) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *heapQueue) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Tree is the in-memory result of BuildTree: a linked tree (for encoding)
// plus a lookup table of each leaf's code.
type Tree struct {
	root  *node
	codes map[byte][]bool
}

// BuildTree constructs a Huffman tree from a byte->count frequency map.
// Zero-count bytes must be absent from freqs.
func BuildTree(freqs map[byte]uint32) (*Tree, error) {
	if len(freqs) < 2 {
		return nil, ErrSingleSymbol
	}

	q := make(heapQueue, 0, len(freqs))
	for b, c := range freqs {
		q = append(q, &node{leaf: true, value: b, prob: uint64(c)})
	}
	heap.Init(&q)

	for q.Len() > 1 {
		left := heap.Pop(&q).(*node)
		right := heap.Pop(&q).(*node)
		parent := &node{left: left, right: right, prob: left.prob + right.prob}
		left.parent, left.rightChild = parent, false
		right.parent, right.rightChild = parent, true
		heap.Push(&q, parent)
	}
	root := heap.Pop(&q).(*node)

	t := &Tree{root: root, codes: make(map[byte][]bool, len(freqs))}
	t.collectCodes(root, nil)
	return t, nil
}

// collectCodes walks down from n, recording each leaf's root-to-leaf path
// (false for a left edge, true for a right edge) as that leaf's code.
func (t *Tree) collectCodes(n *node, pathToHere []bool) {
	if n.leaf {
		code := make([]bool, len(pathToHere))
		copy(code, pathToHere)
		t.codes[n.value] = code
		return
	}
	t.collectCodes(n.left, append(pathToHere, false))
	t.collectCodes(n.right, append(pathToHere, true))
}

// Code returns the bit-string code for b, and whether b is in the tree.
func (t *Tree) Code(b byte) ([]bool, bool) {
	c, ok := t.codes[b]
	return c, ok
}

// Serialize writes the tree as a bit-packed pre-order traversal: internal
// nodes write a 1 bit then recurse left, right; leaves write a 0 bit then
// their byte value as 8 bits, most-significant first.
func (t *Tree) Serialize(w *bitio.Writer) error {
	return serializeNode(w, t.root)
}

func serializeNode(w *bitio.Writer, n *node) error {
	if n.leaf {
		if err := w.WriteBit(false); err != nil {
			return err
		}
		return w.WriteByte(n.value)
	}
	if err := w.WriteBit(true); err != nil {
		return err
	}
	if err := serializeNode(w, n.left); err != nil {
		return err
	}
	return serializeNode(w, n.right)
}
