package sparse

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitkit"
)

// FromBitArray collects the set bit positions of a packed array into a
// sparse bitmap. Positions beyond 32 bits are outside the roaring universe
// and must not occur; packed arrays that large are impractical anyway.
func FromBitArray(a *bitkit.BitArray) *Bitmap {
	b := New()
	for pos := range a.Ones() {
		b.rb.Add(uint32(pos))
	}
	return b
}

// ToBitArray materializes the bitmap into a packed array of n bits.
// Positions at or past n are dropped.
func (b *Bitmap) ToBitArray(n uint) *bitkit.BitArray {
	a := bitkit.NewSized(n)
	for pos := range b.Values() {
		if uint(pos) >= n {
			break
		}
		a.Set(uint(pos), true)
	}
	return a
}

// FromBitSet converts a bits-and-blooms bitset.
func FromBitSet(s *bitset.BitSet) *Bitmap {
	b := New()
	for pos, ok := s.NextSet(0); ok; pos, ok = s.NextSet(pos + 1) {
		b.rb.Add(uint32(pos))
	}
	return b
}

// ToBitSet converts to a bits-and-blooms bitset sized to the highest
// position present.
func (b *Bitmap) ToBitSet() *bitset.BitSet {
	if b.rb.IsEmpty() {
		return bitset.New(0)
	}
	s := bitset.New(uint(b.rb.Maximum()) + 1)
	for pos := range b.Values() {
		s.Set(uint(pos))
	}
	return s
}
