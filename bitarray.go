package bitkit

import (
	"iter"
	"math/bits"
	"slices"

	"github.com/hupe1980/bitkit/bitops"
)

// wordBits is the width of the fixed chunk type of BitArray.
const wordBits = 64

// BitArray is an owning, growable packed bit array backed by uint64 chunks.
// Bit 0 is the most significant bit of the first chunk.
//
// A BitArray moves through three states: the zero value is Null (never
// sized, no buffer), Resize(0) produces Empty (a released, zero-length
// buffer distinguishable from Null), and any positive length is Sized.
// Bits beyond Len in the last chunk are always kept zero, so whole-chunk
// equality and hashing stay meaningful.
//
// Assigning a BitArray value shares the underlying buffer; use Clone for a
// deep copy.
type BitArray struct {
	words []uint64
	bits  uint
}

// New returns a null bit array.
func New() *BitArray {
	return &BitArray{}
}

// NewSized returns a zero-initialized bit array of n bits.
func NewSized(n uint) *BitArray {
	a := &BitArray{}
	a.Resize(n)
	return a
}

// Len returns the bit length.
func (a *BitArray) Len() uint { return a.bits }

// WordLen returns the number of backing chunks.
func (a *BitArray) WordLen() int { return len(a.words) }

// IsNull reports whether the array has never been sized.
func (a *BitArray) IsNull() bool { return a.words == nil }

// IsEmpty reports whether the bit length is zero. Null arrays are empty;
// the converse does not hold after Resize(0).
func (a *BitArray) IsEmpty() bool { return a.bits == 0 }

// Words exposes the backing chunk slice without copying. It is meant for
// advanced users; mutating it can break the trailing-padding invariant.
func (a *BitArray) Words() []uint64 { return a.words }

// Clone returns a deep copy.
func (a *BitArray) Clone() *BitArray {
	if a.words == nil {
		return &BitArray{}
	}
	return &BitArray{words: slices.Clone(a.words), bits: a.bits}
}

// Resize changes the bit length to n, preserving the overlapping prefix
// bit for bit and zero-filling any new bits. Resizing to 0 releases the
// buffer and leaves the array Empty. When the chunk count is unchanged the
// buffer is reused in place.
func (a *BitArray) Resize(n uint) {
	if n == 0 {
		a.words = make([]uint64, 0)
		a.bits = 0
		return
	}
	nc := bitops.Chunks[uint64](n)
	if nc == len(a.words) {
		shrink := n < a.bits
		a.bits = n
		if shrink {
			bitops.ClearTail(a.words, n)
		}
		return
	}
	words := make([]uint64, nc)
	copy(words, a.words)
	a.words = words
	a.bits = n
	bitops.ClearTail(a.words, n)
}

// ResizePow2 rounds n up to the next power-of-two bit count before
// resizing, for ring-buffer style uses that want modulus via masking.
func (a *BitArray) ResizePow2(n uint) {
	a.Resize(ceilPow2(n))
}

func ceilPow2(n uint) uint {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(n-1)
}

// Get returns the bit at pos, or false if pos is out of range.
func (a *BitArray) Get(pos uint) bool {
	return bitops.Get(a.words, a.bits, pos)
}

// Set sets or clears the bit at pos and reports whether pos was in range.
func (a *BitArray) Set(pos uint, v bool) bool {
	return bitops.Set(a.words, a.bits, pos, v)
}

// SetRange sets or clears count bits starting at pos and returns the
// number of bits actually modified.
func (a *BitArray) SetRange(pos, count uint, v bool) uint {
	return bitops.SetRange(a.words, a.bits, pos, count, v)
}

// Toggle inverts the bit at pos and reports whether pos was in range.
func (a *BitArray) Toggle(pos uint) bool {
	return bitops.Toggle(a.words, a.bits, pos)
}

// ToggleRange inverts count bits starting at pos and returns the number of
// bits actually modified.
func (a *BitArray) ToggleRange(pos, count uint) uint {
	return bitops.ToggleRange(a.words, a.bits, pos, count)
}

// Count returns the number of bits with value v in the whole array.
func (a *BitArray) Count(v bool) uint {
	return bitops.Count(a.words, a.bits, 0, bitops.All, v)
}

// CountRange returns the number of bits with value v in the run of count
// bits starting at pos, clamped to the array length.
func (a *BitArray) CountRange(pos, count uint, v bool) uint {
	return bitops.Count(a.words, a.bits, pos, count, v)
}

// All reports whether every bit is set. Empty arrays are vacuously true.
func (a *BitArray) All() bool {
	return bitops.AllSet(a.words, a.bits, 0, bitops.All)
}

// AllRange reports whether every bit in the clamped run is set.
func (a *BitArray) AllRange(pos, count uint) bool {
	return bitops.AllSet(a.words, a.bits, pos, count)
}

// Any reports whether at least one bit is set.
func (a *BitArray) Any() bool {
	return bitops.AnySet(a.words, a.bits, 0, bitops.All)
}

// AnyRange reports whether at least one bit in the clamped run is set.
func (a *BitArray) AnyRange(pos, count uint) bool {
	return bitops.AnySet(a.words, a.bits, pos, count)
}

// Store writes the low count bits of v at pos, most significant first, and
// returns the number of bits written. Writes past the end are truncated.
func (a *BitArray) Store(pos, count uint, v uint64) uint {
	return bitops.Store(a.words, a.bits, pos, count, v)
}

// Extract reads count bits (at most 64) starting at pos and returns them
// right-aligned as an integer. Reads past the end are zero-padded.
func (a *BitArray) Extract(pos, count uint) uint64 {
	return bitops.ExtractR[uint64, uint64](a.words, a.bits, pos, count)
}

// ExtractLeft reads count bits (at most 64) starting at pos and returns
// them left-aligned: bit pos becomes the most significant result bit.
// Reads past the end truncate count instead of zero-padding.
func (a *BitArray) ExtractLeft(pos, count uint) uint64 {
	return bitops.ExtractL[uint64, uint64](a.words, a.bits, pos, count)
}

// ShiftLeft shifts the whole array toward bit 0 by n positions,
// zero-filling the tail. n >= Len clears the array.
func (a *BitArray) ShiftLeft(n uint) {
	bitops.ShiftL(a.words, a.bits, n)
}

// ShiftRight shifts the whole array toward the end by n positions,
// zero-filling from the front. n >= Len clears the array.
func (a *BitArray) ShiftRight(n uint) {
	bitops.ShiftR(a.words, a.bits, n)
}

// Equal reports whether both arrays have the same bit length and content.
// Arrays of different lengths are never equal, even when their set bits
// coincide up to the shorter length.
func (a *BitArray) Equal(o *BitArray) bool {
	return a.bits == o.bits && slices.Equal(a.words, o.words)
}

// Ones returns a sequence of the set bit positions in ascending order.
func (a *BitArray) Ones() iter.Seq[uint] {
	return bitops.Ones(a.words, a.bits)
}

// Iter returns a resumable cursor over the set bit positions.
func (a *BitArray) Iter() *bitops.Iter[uint64] {
	return bitops.NewIter(a.words, a.bits)
}
