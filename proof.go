package talon

import (
	"bytes"
	"fmt"

	"github.com/gordian-engine/talon/thash"
)

// Proof is an ordered sequence of sibling digests,
// from a leaf's immediate sibling up to the sibling closest to the root.
// The digests are copied out of the tree's backing memory,
// so a Proof remains valid after the tree itself is discarded.
type Proof [][]byte

// Prove returns the membership proof for the given leaf.
// The proof has exactly [*Tree.Height] entries.
//
// The handle must be a leaf of this tree,
// obtained through [*Tree.Leaf] or by walking down from [*Tree.Root].
// Handles from other trees are a bug in the caller.
func (t *Tree) Prove(leaf Node) Proof {
	if leaf.t != t {
		panic(fmt.Errorf("BUG: leaf handle does not belong to this tree"))
	}
	if !leaf.IsLeaf() {
		panic(fmt.Errorf(
			"BUG: attempted to prove internal node at index %d", leaf.idx,
		))
	}

	proof := make(Proof, 0, t.Height())

	cur := leaf.idx
	for {
		parent := t.nodes[cur].parent
		if parent == noNode {
			break
		}

		sibling := t.nodes[parent].left
		if sibling == cur {
			sibling = t.nodes[parent].right
		}

		proof = append(proof, bytes.Clone(t.nodes[sibling].hash))
		cur = parent
	}

	return proof
}

// Verify reports whether proof connects leafHash to rootHash.
//
// Starting from leafHash, each proof entry is merged in order,
// always placing the lexicographically smaller digest on the left.
// [Build] derives parent digests with the same rule,
// so the verifier does not need the leaf's position
// or the left/right shape of its path.
//
// Verify never fails: a malformed or mismatched proof yields false.
// An empty proof is valid against a single-leaf tree,
// where it reports true iff leafHash equals rootHash.
func Verify(rootHash, leafHash []byte, proof Proof, h thash.Hasher) bool {
	cur := bytes.Clone(leafHash)
	for _, sibling := range proof {
		cur = pairDigest(h, cur[:0], cur, sibling)
	}

	return bytes.Equal(cur, rootHash)
}
