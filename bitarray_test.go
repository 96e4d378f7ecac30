package bitkit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitkit/bitops"
)

func TestBitArrayStates(t *testing.T) {
	a := New()
	assert.True(t, a.IsNull())
	assert.True(t, a.IsEmpty())
	assert.Equal(t, uint(0), a.Len())

	a.Resize(10)
	assert.False(t, a.IsNull())
	assert.False(t, a.IsEmpty())
	assert.Equal(t, uint(10), a.Len())
	assert.Equal(t, 1, a.WordLen())

	// Resize(0) releases the buffer but stays distinguishable from Null.
	a.Resize(0)
	assert.False(t, a.IsNull())
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.WordLen())
}

func TestBitArrayResizePreservesPrefix(t *testing.T) {
	a := NewSized(10)
	a.Set(0, true)
	a.Set(9, true)

	// Growth across chunk boundaries zero-fills the new bits.
	a.Resize(200)
	assert.True(t, a.Get(0))
	assert.True(t, a.Get(9))
	for i := uint(10); i < 200; i++ {
		require.False(t, a.Get(i), "bit %d must be zero after growth", i)
	}

	// Shrinking keeps the prefix and re-zeroes the padding.
	a.SetRange(0, 200, true)
	a.Resize(10)
	assert.Equal(t, uint(10), a.Count(true))
	assert.Equal(t, uint64(0x3FF), a.Extract(0, 10))

	// Growing again must not resurrect the cleared bits.
	a.Resize(64)
	assert.Equal(t, uint(10), a.Count(true))
}

func TestBitArrayResizeSameChunkCount(t *testing.T) {
	a := NewSized(60)
	a.SetRange(0, 60, true)
	words := a.Words()

	a.Resize(40) // still one chunk, buffer reused
	assert.Equal(t, 1, a.WordLen())
	assert.Equal(t, uint(40), a.Count(true))
	assert.Same(t, &words[0], &a.Words()[0])

	a.Resize(64)
	assert.Equal(t, uint(40), a.Count(true))
}

func TestBitArrayResizePow2(t *testing.T) {
	tests := []struct {
		n    uint
		want uint
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{10, 16},
		{16, 16},
		{17, 32},
		{1000, 1024},
	}
	for _, tt := range tests {
		a := New()
		a.ResizePow2(tt.n)
		assert.Equal(t, tt.want, a.Len(), "ResizePow2(%d)", tt.n)
	}
}

func TestBitArrayStoreExtractScenario(t *testing.T) {
	// 10-bit array with bits 0 and 9 set, 0b111 stored at bits 2..4.
	a := NewSized(10)
	a.Set(0, true)
	a.Set(9, true)
	a.Store(2, 3, 7)

	assert.True(t, a.Get(0))
	assert.False(t, a.Get(1))
	assert.Equal(t, uint64(7), a.Extract(2, 3))
	assert.Equal(t, uint64(0x2E1), a.Extract(0, 10))
}

func TestBitArrayCountCheckConsistency(t *testing.T) {
	a := NewSized(300)
	for i := uint(0); i < 300; i += 7 {
		a.Set(i, true)
	}

	ones := a.Count(true)
	zeros := a.Count(false)
	assert.Equal(t, a.Len(), ones+zeros)
	assert.Equal(t, ones > 0, a.Any())
	assert.Equal(t, zeros == 0, a.All())

	a.SetRange(0, 300, true)
	assert.True(t, a.All())
	assert.Equal(t, uint(300), a.Count(true))

	a.SetRange(0, 300, false)
	assert.False(t, a.Any())

	// Empty arrays: vacuous All, no Any.
	e := NewSized(0)
	assert.True(t, e.All())
	assert.False(t, e.Any())
}

func TestBitArrayToggle(t *testing.T) {
	a := NewSized(70)
	assert.True(t, a.Toggle(65))
	assert.True(t, a.Get(65))
	assert.Equal(t, uint(70), a.ToggleRange(0, bitops.All))
	assert.Equal(t, uint(69), a.Count(true))
	assert.False(t, a.Get(65))
	assert.False(t, a.Toggle(70))
}

func TestBitArrayShiftIdentity(t *testing.T) {
	a := NewSized(100)
	a.Store(0, 64, 0xDEADBEEFCAFEF00D)
	b := a.Clone()

	a.ShiftRight(30)
	a.ShiftLeft(30)
	assert.True(t, a.Equal(b), "last 30 bits were zero, shift pair must be identity")

	a.ShiftLeft(100)
	assert.False(t, a.Any())
}

func TestBitArrayEqual(t *testing.T) {
	a := NewSized(10)
	b := NewSized(10)
	assert.True(t, a.Equal(b))

	a.Set(3, true)
	assert.False(t, a.Equal(b))
	b.Set(3, true)
	assert.True(t, a.Equal(b))

	// Different lengths are never equal, even with coinciding bits.
	c := NewSized(11)
	c.Set(3, true)
	assert.False(t, a.Equal(c))
}

func TestBitArrayClone(t *testing.T) {
	a := NewSized(80)
	a.Set(77, true)

	b := a.Clone()
	require.True(t, a.Equal(b))
	b.Set(0, true)
	assert.False(t, a.Get(0), "clone must not share the buffer")

	n := New().Clone()
	assert.True(t, n.IsNull())
}

func TestBitArrayOnes(t *testing.T) {
	a := NewSized(130)
	want := []uint{0, 2, 63, 64, 129}
	for _, p := range want {
		a.Set(p, true)
	}
	assert.Equal(t, want, slices.Collect(a.Ones()))

	it := a.Iter()
	pos, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, uint(0), pos)
}
