// Package talon builds binary Merkle trees over ordered data blocks
// and produces compact membership proofs for individual blocks.
//
// TALON stands for Tree Authentication over Leaf-Ordered Nodes.
// Build a tree with [Build], generate the proof for one leaf with
// [*Tree.Prove], and check a proof against a root digest with [Verify].
// The hash primitive is injected through [thash.Hasher],
// so callers choose the digest function;
// see the tsha256 package for a SHA-256 implementation.
package talon
