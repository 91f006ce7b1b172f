package talon_test

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/gordian-engine/talon"
	"github.com/gordian-engine/talon/thash/tsha256"
	"github.com/stretchr/testify/require"
)

func TestProve_length(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		blocks, proofLen int
	}{
		{blocks: 1, proofLen: 0},
		{blocks: 2, proofLen: 1},
		{blocks: 3, proofLen: 2},
		{blocks: 4, proofLen: 2},
		{blocks: 5, proofLen: 3},
		{blocks: 8, proofLen: 3},
		{blocks: 9, proofLen: 4},
	} {
		tc := tc
		t.Run(fmt.Sprintf("blocks=%d", tc.blocks), func(t *testing.T) {
			t.Parallel()

			tree, err := talon.Build(testBlocks(tc.blocks), sha256Config())
			require.NoError(t, err)

			require.Equal(t, tc.proofLen, tree.Height())

			for i := 0; i < tree.NumLeaves(); i++ {
				proof := tree.Prove(tree.Leaf(i))
				require.Len(t, proof, tc.proofLen)
			}
		})
	}
}

func TestVerify_roundTrip(t *testing.T) {
	t.Parallel()

	for blocks := 1; blocks <= 8; blocks++ {
		blocks := blocks
		t.Run(fmt.Sprintf("blocks=%d", blocks), func(t *testing.T) {
			t.Parallel()

			tree, err := talon.Build(testBlocks(blocks), sha256Config())
			require.NoError(t, err)

			rootHash := tree.RootHash()

			for i := 0; i < tree.NumLeaves(); i++ {
				leaf := tree.Leaf(i)
				proof := tree.Prove(leaf)

				require.True(
					t,
					talon.Verify(rootHash, leaf.Hash(), proof, tsha256.Hasher{}),
				)
			}
		})
	}
}

func TestVerify_tamperedProofEntry(t *testing.T) {
	t.Parallel()

	tree, err := talon.Build(testBlocks(4), sha256Config())
	require.NoError(t, err)

	rootHash := tree.RootHash()
	leaf := tree.Leaf(1)
	proof := tree.Prove(leaf)

	require.True(t, talon.Verify(rootHash, leaf.Hash(), proof, tsha256.Hasher{}))

	// Flipping any single byte of any proof entry must fail verification.
	for entry := range proof {
		for b := range proof[entry] {
			tampered := cloneProof(proof)
			tampered[entry][b] ^= 0x01

			require.False(
				t,
				talon.Verify(rootHash, leaf.Hash(), tampered, tsha256.Hasher{}),
				"entry %d, byte %d", entry, b,
			)
		}
	}
}

func TestVerify_substitutedLeafHash(t *testing.T) {
	t.Parallel()

	tree, err := talon.Build(testBlocks(4), sha256Config())
	require.NoError(t, err)

	rootHash := tree.RootHash()
	proof := tree.Prove(tree.Leaf(0))

	// Another leaf's hash with leaf 0's proof must not verify.
	otherLeafHash := tree.Leaf(2).Hash()
	require.False(t, talon.Verify(rootHash, otherLeafHash, proof, tsha256.Hasher{}))
}

func TestVerify_singleLeaf(t *testing.T) {
	t.Parallel()

	tree, err := talon.Build([][]byte{[]byte("x")}, sha256Config())
	require.NoError(t, err)

	require.Equal(t, 1, tree.NumLeaves())
	require.Equal(t, 0, tree.Height())

	leaf := tree.Leaf(0)
	require.Equal(t, leaf.Hash(), tree.RootHash())

	proof := tree.Prove(leaf)
	require.Empty(t, proof)

	require.True(t, talon.Verify(tree.RootHash(), leaf.Hash(), proof, tsha256.Hasher{}))
	require.False(t, talon.Verify(tree.RootHash(), sha256Hash("y"), proof, tsha256.Hasher{}))
}

func TestProof_concreteScenario(t *testing.T) {
	t.Parallel()

	/* build(["A","B","C"]) pads to four leaves:

	AB C_
	A B C _

	*/

	tree, err := talon.Build([][]byte{
		[]byte("A"),
		[]byte("B"),
		[]byte("C"),
	}, sha256Config())
	require.NoError(t, err)

	require.Equal(t, 4, tree.NumLeaves())
	require.Equal(t, 2, tree.Height())

	leafA := tree.Leaf(0)
	proof := tree.Prove(leafA)

	expProof := talon.Proof{
		sha256Hash("B"),
		sha256Pair(sha256Hash("C"), sha256Hash("_")),
	}
	require.Equal(t, expProof, proof)

	rootHash := tree.RootHash()
	require.True(t, talon.Verify(rootHash, leafA.Hash(), proof, tsha256.Hasher{}))

	// Replacing either proof entry with an unrelated digest must fail.
	for entry := range proof {
		tampered := cloneProof(proof)
		tampered[entry] = sha256Hash("Z")

		require.False(t, talon.Verify(rootHash, leafA.Hash(), tampered, tsha256.Hasher{}))
	}
}

func TestProve_foreignLeafPanics(t *testing.T) {
	t.Parallel()

	t1, err := talon.Build(testBlocks(2), sha256Config())
	require.NoError(t, err)

	t2, err := talon.Build(testBlocks(2), sha256Config())
	require.NoError(t, err)

	require.Panics(t, func() {
		t1.Prove(t2.Leaf(0))
	})
}

func TestProof_copiesDigests(t *testing.T) {
	t.Parallel()

	tree, err := talon.Build(testBlocks(4), sha256Config())
	require.NoError(t, err)

	proof := tree.Prove(tree.Leaf(3))

	// The first proof entry is leaf 3's sibling, leaf 2.
	// It is a copy, so mutating it must not be visible through the tree.
	require.Equal(t, tree.Leaf(2).Hash(), proof[0])
	proof[0][0] ^= 0xff
	require.NotEqual(t, tree.Leaf(2).Hash(), proof[0])
}

func sha256Config() talon.Config {
	return talon.Config{
		Hasher:   tsha256.Hasher{},
		HashSize: tsha256.HashSize,
	}
}

// sha256Hash is a convenience function to hash a string.
func sha256Hash(in string) []byte {
	res := sha256.Sum256([]byte(in))
	return res[:]
}

// sha256Pair merges two digests the way the tree does:
// the lexicographically smaller digest goes on the left.
func sha256Pair(a, b []byte) []byte {
	if bytes.Compare(b, a) < 0 {
		a, b = b, a
	}
	res := sha256.Sum256(append(append([]byte(nil), a...), b...))
	return res[:]
}

func cloneProof(p talon.Proof) talon.Proof {
	c := make(talon.Proof, len(p))
	for i := range p {
		c[i] = bytes.Clone(p[i])
	}
	return c
}
