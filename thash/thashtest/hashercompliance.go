package thashtest

import (
	"testing"

	"github.com/gordian-engine/talon/thash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h thash.Hasher, hashSize int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, 0, sz)
		dst01 = h.Sum(dst01, []byte("deterministic_data"))

		dst02 := make([]byte, 0, sz)
		dst02 = h.Sum(dst02, []byte("deterministic_data"))

		require.Equal(t, dst01, dst02)
	})

	t.Run("sum output matches reported size", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst := h.Sum(nil, []byte("sized_data"))
		require.Len(t, dst, sz)
	})

	t.Run("sum respects input", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		dst01 := h.Sum(nil, []byte("input_1"))
		dst02 := h.Sum(nil, []byte("input_2"))

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("sum appends to dst", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		prefix := []byte("prefix_")
		dst := h.Sum(append([]byte(nil), prefix...), []byte("appended_data"))

		require.Len(t, dst, len(prefix)+sz)
		require.Equal(t, prefix, dst[:len(prefix)])
		require.Equal(t, h.Sum(nil, []byte("appended_data")), dst[len(prefix):])
	})

	t.Run("combine respects order", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		left := h.Sum(nil, []byte("left_child"))
		right := h.Sum(nil, []byte("right_child"))

		lr := thash.Combine(h, nil, left, right)
		rl := thash.Combine(h, nil, right, left)

		require.NotEqual(t, lr, rl)
	})
}
