package talon

import (
	"bytes"
	"errors"
	"fmt"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/talon/thash"
)

var ErrAlreadyProven = errors.New("leaf was already proven")

var ErrProofMismatch = errors.New("proof did not connect leaf to root")

var ErrProofLength = errors.New("proof length did not match tree height")

// ProofSet tracks which leaves of a tree have been proven
// against a trusted root digest.
//
// It holds no reference to the tree itself:
// callers feed in one leaf digest and proof at a time,
// typically as they arrive from elsewhere,
// and the set records which leaf indices have checked out so far.
type ProofSet struct {
	rootHash []byte

	// Which leaves have verified; a bitset keeps this cheap
	// even for wide trees.
	proven *bitset.BitSet

	nLeaves int
	height  int

	hasher thash.Hasher
}

// NewProofSet returns a set that verifies leaves against rootHash.
// nLeaves must be the padded, power-of-two leaf count of the tree,
// as reported by [*Tree.NumLeaves].
func NewProofSet(rootHash []byte, nLeaves int, h thash.Hasher) *ProofSet {
	if nLeaves <= 0 || nLeaves&(nLeaves-1) != 0 {
		panic(fmt.Errorf(
			"BUG: nLeaves must be a positive power of two (got %d)", nLeaves,
		))
	}
	if h == nil {
		panic(fmt.Errorf("BUG: hasher must not be nil"))
	}

	return &ProofSet{
		rootHash: bytes.Clone(rootHash),

		proven: bitset.MustNew(uint(nLeaves)),

		nLeaves: nLeaves,
		height:  bits.Len(uint(nLeaves)) - 1,

		hasher: h,
	}
}

// AddLeaf verifies that proof connects leafHash to the set's root
// and records the leaf at idx as proven.
//
// A proof with the wrong number of entries for the tree height
// returns [ErrProofLength];
// a proof that fails verification returns [ErrProofMismatch];
// a leaf that already verified earlier returns [ErrAlreadyProven].
func (s *ProofSet) AddLeaf(idx int, leafHash []byte, proof Proof) error {
	if idx < 0 || idx >= s.nLeaves {
		panic(fmt.Errorf(
			"BUG: leaf index %d out of range [0, %d)", idx, s.nLeaves,
		))
	}

	if len(proof) != s.height {
		return ErrProofLength
	}

	if !Verify(s.rootHash, leafHash, proof, s.hasher) {
		return ErrProofMismatch
	}

	if s.proven.Test(uint(idx)) {
		return ErrAlreadyProven
	}

	s.proven.Set(uint(idx))
	return nil
}

// HasLeaf reports whether the leaf at idx has been proven.
// HasLeaf reports false if idx is out of bounds.
func (s *ProofSet) HasLeaf(idx int) bool {
	return idx >= 0 && idx < s.nLeaves && s.proven.Test(uint(idx))
}

// Proven returns how many leaves have been proven so far.
func (s *ProofSet) Proven() int {
	return int(s.proven.Count())
}

// Complete reports whether every leaf has been proven.
func (s *ProofSet) Complete() bool {
	return s.Proven() == s.nLeaves
}
