package talon

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/gordian-engine/talon/thash"
)

// DefaultPadBlock is appended to the input blocks during [Build]
// until the block count reaches a power of two.
// Override it per tree with [Config.PadBlock].
var DefaultPadBlock = []byte("_")

// Config is the configuration for [Build].
type Config struct {
	// How to hash data blocks and digest pairs.
	Hasher thash.Hasher

	// The size, in bytes, of digests produced by Hasher.
	// Required for sizing the tree's backing memory.
	HashSize int

	// PadBlock overrides [DefaultPadBlock] as the block
	// appended to pad the input to a power-of-two count.
	// Choose a value that cannot appear as a legitimate block
	// if callers need to distinguish padding leaves from real ones.
	PadBlock []byte
}

// Tree is a binary Merkle tree over an ordered sequence of data blocks.
// All of its digests live in a single backing allocation,
// and child, parent, and sibling relationships are arena indices
// rather than pointers, so the whole tree is released as one unit.
//
// A Tree is immutable once [Build] returns.
type Tree struct {
	// Views into the single backing slice.
	// Leaves occupy [0, nLeaves); the root is the final element.
	nodes []node

	nLeaves  int
	hashSize int
}

// node is one digest in the arena.
// Links are arena indices; noNode means absent.
type node struct {
	hash []byte

	left, right, parent int32
}

const noNode = int32(-1)

// Build constructs the Merkle tree for the given ordered data blocks.
//
// If the block count is not a power of two,
// the input is padded with the configured pad block;
// padding leaves are hashed identically to real ones.
// Leaf order is preserved: leaf i corresponds to input block i.
//
// Build returns [ErrEmptyInput] when called with zero blocks.
func Build(blocks [][]byte, cfg Config) (*Tree, error) {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: Config.Hasher must not be nil"))
	}
	if cfg.HashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: Config.HashSize must be positive (got %d)", cfg.HashSize,
		))
	}

	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}

	pad := cfg.PadBlock
	if pad == nil {
		pad = DefaultPadBlock
	}

	nLeaves := paddedCount(len(blocks))

	// Every non-leaf node has exactly two children,
	// so the node count is fixed by the leaf count.
	nNodes := 2*nLeaves - 1
	mem := make([]byte, nNodes*cfg.HashSize)

	t := &Tree{
		nodes: make([]node, nNodes),

		nLeaves:  nLeaves,
		hashSize: cfg.HashSize,
	}
	for i := range t.nodes {
		start := i * cfg.HashSize
		t.nodes[i] = node{
			hash: mem[start : start+cfg.HashSize],

			left:   noNode,
			right:  noNode,
			parent: noNode,
		}
	}

	h := cfg.Hasher
	for i := 0; i < nLeaves; i++ {
		block := pad
		if i < len(blocks) {
			block = blocks[i]
		}
		h.Sum(t.nodes[i].hash[:0], block)
	}

	// Bottom-up reduction: consume the working row two nodes at a time,
	// in left-to-right order, appending each new parent behind the row.
	// Because the leaf count is a power of two,
	// the k-th parent always merges arena nodes 2k and 2k+1
	// and lands at arena index nLeaves+k.
	writeIdx := nLeaves
	for k := 0; writeIdx < nNodes; k += 2 {
		left := int32(k)
		right := int32(k + 1)

		pairDigest(h, t.nodes[writeIdx].hash[:0], t.nodes[left].hash, t.nodes[right].hash)

		t.nodes[writeIdx].left = left
		t.nodes[writeIdx].right = right
		t.nodes[left].parent = int32(writeIdx)
		t.nodes[right].parent = int32(writeIdx)

		writeIdx++
	}

	return t, nil
}

// pairDigest appends the parent digest for two child digests to dst.
// The lexicographically smaller digest is always placed on the left,
// and [Build] and [Verify] both merge through here,
// so verification never needs to know
// which side of its parent a node occupied.
func pairDigest(h thash.Hasher, dst, a, b []byte) []byte {
	if bytes.Compare(a, b) < 0 {
		return thash.Combine(h, dst, a, b)
	}
	return thash.Combine(h, dst, b, a)
}

// paddedCount returns the smallest power of two >= n.
func paddedCount(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// Root returns the handle of the root node.
func (t *Tree) Root() Node {
	return Node{t: t, idx: int32(len(t.nodes) - 1)}
}

// RootHash returns a copy of the root digest.
func (t *Tree) RootHash() []byte {
	return bytes.Clone(t.nodes[len(t.nodes)-1].hash)
}

// NumLeaves returns the padded leaf count.
func (t *Tree) NumLeaves() int {
	return t.nLeaves
}

// Height returns the number of levels between a leaf and the root.
// A single-leaf tree has height zero.
func (t *Tree) Height() int {
	return bits.Len(uint(t.nLeaves)) - 1
}

// Leaf returns the handle for the leaf at the given index.
func (t *Tree) Leaf(idx int) Node {
	if idx < 0 || idx >= t.nLeaves {
		panic(fmt.Errorf(
			"BUG: attempted to get leaf at index %d; must be in range [0, %d)",
			idx, t.nLeaves,
		))
	}

	return Node{t: t, idx: int32(idx)}
}

// Node is a handle to a single digest in a [Tree].
// Handles are obtained from [*Tree.Leaf] or [*Tree.Root]
// and remain valid for the lifetime of the tree.
//
// The zero Node does not belong to any tree and must not be used.
type Node struct {
	t   *Tree
	idx int32
}

// Hash returns a copy of this node's digest.
func (n Node) Hash() []byte {
	return bytes.Clone(n.t.nodes[n.idx].hash)
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return n.t.nodes[n.idx].left == noNode
}

// Left returns the left child, or a zero Node and false for a leaf.
func (n Node) Left() (Node, bool) {
	l := n.t.nodes[n.idx].left
	if l == noNode {
		return Node{}, false
	}
	return Node{t: n.t, idx: l}, true
}

// Right returns the right child, or a zero Node and false for a leaf.
func (n Node) Right() (Node, bool) {
	r := n.t.nodes[n.idx].right
	if r == noNode {
		return Node{}, false
	}
	return Node{t: n.t, idx: r}, true
}

// Parent returns the parent node, or a zero Node and false for the root.
func (n Node) Parent() (Node, bool) {
	p := n.t.nodes[n.idx].parent
	if p == noNode {
		return Node{}, false
	}
	return Node{t: n.t, idx: p}, true
}
