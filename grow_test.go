package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReserveNoop(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.Reserve(2))
	require.Equal(t, 3, v.Cap())
	require.NoError(t, v.Reserve(3))
	require.Equal(t, 3, v.Cap())
}

func TestReserveGrows(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.Reserve(10))
	require.Equal(t, 10, v.Cap())
	require.Equal(t, []int{1, 2, 3}, intValues(v))
	require.Equal(t, 3, v.Len())
}

func TestReserveRelocatesByMove(t *testing.T) {
	h := &hooks{}
	v := probeVector(h, true, 3, 1, 2, 3)

	require.NoError(t, v.Reserve(8))

	require.Equal(t, 3, h.moves)
	require.Equal(t, 0, h.copies)
	// The old buffer held moved-from shells only.
	require.Equal(t, 3, h.destroys)
	require.Equal(t, 0, h.destroyedLive)
	require.Equal(t, []int{1, 2, 3}, probeValues(v))
}

func TestReserveRelocatesByCopy(t *testing.T) {
	// Move is present but not declared no-fail, and the type is copyable,
	// so relocation must copy and leave the originals intact until they
	// are explicitly destroyed.
	h := &hooks{}
	v := probeVector(h, false, 3, 1, 2, 3)

	require.NoError(t, v.Reserve(8))

	require.Equal(t, 3, h.copies)
	require.Equal(t, 0, h.moves)
	require.Equal(t, 3, h.destroyedLive)
	require.Equal(t, []int{1, 2, 3}, probeValues(v))
}

func TestReserveCopyFailureIsStrong(t *testing.T) {
	h := &hooks{}
	v := probeVector(h, false, 3, 1, 2, 3)

	h.failCopyAt = h.copies + 2
	err := v.Reserve(8)
	require.ErrorIs(t, err, errRefused)

	require.Equal(t, []int{1, 2, 3}, probeValues(v))
	require.Equal(t, 3, v.Len())
	require.Equal(t, 3, v.Cap())
	// Only the one transferred copy was destroyed during unwinding.
	require.Equal(t, 1, h.destroys)
}

func TestResizeShrink(t *testing.T) {
	h := &hooks{}
	v := probeVector(h, true, 5, 1, 2, 3, 4, 5)

	require.NoError(t, v.Resize(2))

	require.Equal(t, []int{1, 2}, probeValues(v))
	require.Equal(t, 5, v.Cap()) // capacity is kept
	require.Equal(t, 3, h.destroyedLive)
}

func TestResizeSame(t *testing.T) {
	h := &hooks{}
	v := probeVector(h, true, 3, 1, 2, 3)
	before := *h

	require.NoError(t, v.Resize(3))
	require.Equal(t, before, *h)
}

func TestResizeGrowDefaultConstructs(t *testing.T) {
	h := &hooks{}
	v := probeVector(h, true, 2, 1, 2)

	require.NoError(t, v.Resize(5))

	require.Equal(t, []int{1, 2, 0, 0, 0}, probeValues(v))
	require.Equal(t, 3, h.defaults)
	require.GreaterOrEqual(t, v.Cap(), 5)
}

func TestResizeGrowDefaultFailureUnwinds(t *testing.T) {
	h := &hooks{failDefaultAt: 2}
	v := probeVector(h, true, 1, 1)

	err := v.Resize(4)
	require.ErrorIs(t, err, errRefused)

	// Length is unchanged; the slot built before the failure was destroyed.
	// Capacity may already have grown, which is allowed.
	require.Equal(t, []int{1}, probeValues(v))
	require.Equal(t, 1, v.Len())
	require.GreaterOrEqual(t, v.Cap(), 4)
}

func TestResizeNegativePanics(t *testing.T) {
	v := Of(1)
	require.Panics(t, func() { _ = v.Resize(-1) })
}

func TestCapacityMonotonic(t *testing.T) {
	v := New(ValueOps[int]())
	prev := v.Cap()
	for i := 0; i < 100; i++ {
		require.NoError(t, v.PushBack(i))
		require.GreaterOrEqual(t, v.Cap(), prev)
		prev = v.Cap()
	}
	require.NoError(t, v.Resize(10))
	require.Equal(t, prev, v.Cap())
}
