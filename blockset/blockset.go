// Package blockset splits a payload into erasure-coded data blocks,
// extends them with parity blocks,
// and builds a Merkle tree over the whole block sequence,
// so that any individual block can later be proven
// against the set's root digest.
package blockset

import (
	"fmt"

	"github.com/gordian-engine/talon"
	"github.com/gordian-engine/talon/thash"
	"github.com/klauspost/reedsolomon"
)

// Config is the configuration for [Prepare].
type Config struct {
	// The number of data blocks to split the payload into.
	DataBlocks int

	// ParityRatio indicates the desired ratio of
	// parity blocks to data blocks.
	// For example, ParityRatio=0.25 means there will be
	// one parity block for every four data blocks.
	// The parity count is rounded down
	// if the ratio does not result in a whole number.
	ParityRatio float32

	// How to hash blocks and digest pairs in the underlying Merkle tree.
	Hasher thash.Hasher

	// The size, in bytes, of digests produced by Hasher.
	HashSize int

	// Optional override for the tree's padding block.
	PadBlock []byte
}

// Set is the value returned by [Prepare].
type Set struct {
	// The number of data and parity blocks.
	NumData, NumParity int

	// The data blocks followed by the parity blocks.
	// The final data block is zero-padded to the common block size.
	Blocks [][]byte

	// The Merkle tree over Blocks.
	Tree *talon.Tree
}

// Prepare splits data into erasure-coded blocks according to cfg
// and builds the Merkle tree over them.
func Prepare(data []byte, cfg Config) (Set, error) {
	if cfg.DataBlocks <= 0 {
		panic(fmt.Errorf(
			"BUG: DataBlocks must be positive (got %d)", cfg.DataBlocks,
		))
	}
	if cfg.ParityRatio < 0 {
		panic(fmt.Errorf(
			"BUG: ParityRatio must be non-negative (got %g)", cfg.ParityRatio,
		))
	}

	nData := cfg.DataBlocks
	nParity := int(cfg.ParityRatio * float32(nData))

	blockSize := (len(data) + nData - 1) / nData

	enc, err := reedsolomon.New(
		nData, nParity,
		reedsolomon.WithAutoGoroutines(blockSize),
	)
	if err != nil {
		return Set{}, fmt.Errorf(
			"failed to build Reed-Solomon encoder: %w", err,
		)
	}

	blocks, err := enc.Split(data)
	if err != nil {
		return Set{}, fmt.Errorf(
			"failed to split data into blocks: %w", err,
		)
	}

	if err := enc.Encode(blocks); err != nil {
		return Set{}, fmt.Errorf(
			"failed to erasure-code blocks: %w", err,
		)
	}

	tree, err := talon.Build(blocks, talon.Config{
		Hasher:   cfg.Hasher,
		HashSize: cfg.HashSize,
		PadBlock: cfg.PadBlock,
	})
	if err != nil {
		return Set{}, fmt.Errorf(
			"failed to build tree over blocks: %w", err,
		)
	}

	return Set{
		NumData:   nData,
		NumParity: nParity,

		Blocks: blocks,

		Tree: tree,
	}, nil
}

// Proof returns the membership proof for the block at the given index.
func (s Set) Proof(idx int) talon.Proof {
	return s.Tree.Prove(s.Tree.Leaf(idx))
}
