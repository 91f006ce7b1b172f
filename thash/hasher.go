package thash

// Hasher is the user-defined interface for producing digests.
// The tree uses a single Hasher both to hash raw data blocks into leaves
// and, through [Combine], to merge two child digests into a parent digest.
//
// To be allocation-efficient, the Hasher implementation
// must append its digest output to dst, instead of creating a new byte slice.
// Hasher must be deterministic, and it must not retain references to dst.
type Hasher interface {
	Sum(dst, in []byte) []byte
}

// Combine appends the digest of the concatenation of left and right to dst,
// returning the extended slice.
//
// Argument order matters: for distinct left and right,
// Combine(h, nil, left, right) and Combine(h, nil, right, left)
// produce different digests.
//
// The inputs are copied into a scratch buffer before hashing,
// so dst may alias left or right.
func Combine(h Hasher, dst, left, right []byte) []byte {
	buf := make([]byte, 0, len(left)+len(right))
	buf = append(buf, left...)
	buf = append(buf, right...)
	return h.Sum(dst, buf)
}
