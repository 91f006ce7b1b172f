package tsha256_test

import (
	"testing"

	"github.com/gordian-engine/talon/thash"
	"github.com/gordian-engine/talon/thash/thashtest"
	"github.com/gordian-engine/talon/thash/tsha256"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	thashtest.TestHasherCompliance(t, func() (thash.Hasher, int) {
		return tsha256.Hasher{}, tsha256.HashSize
	})
}
