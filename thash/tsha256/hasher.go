package tsha256

import (
	"crypto/sha256"
)

const HashSize = sha256.Size

// Hasher is a [thash.Hasher] backed by SHA-256 digests.
type Hasher struct{}

func (Hasher) Sum(dst, in []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(in)
	return h.Sum(dst)
}
