package bitops

import "math/bits"

// Chunk is the set of unsigned integer types usable as bit-array storage.
type Chunk interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

const (
	// None is the "not found" sentinel, the maximum value of the size type.
	None = ^uint(0)

	// All as a count means "to the end of the addressable range".
	All = ^uint(0)
)

// Width returns the number of bits in the chunk type T.
func Width[T Chunk]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Chunks returns the number of chunks needed to hold bitlen bits.
func Chunks[T Chunk](bitlen uint) int {
	w := Width[T]()
	return int((bitlen + w - 1) / w)
}

// Mask returns a chunk with count bits set starting at start, counted from
// the most significant bit. The range is not validated: start and
// start+count beyond the chunk width degrade silently. Use SafeMask unless
// the caller has already established the bounds.
func Mask[T Chunk](start, count uint) T {
	all := ^T(0)
	return (all >> start) &^ (all >> (start + count))
}

// SafeMask is the bounds-checked variant of Mask: start at or beyond the
// chunk width yields 0, count is clamped to the remaining width. This is
// the recommended default.
func SafeMask[T Chunk](start, count uint) T {
	w := Width[T]()
	if start >= w {
		return 0
	}
	if count > w-start {
		count = w - start
	}
	return Mask[T](start, count)
}

// lowMask returns a chunk with the low n bits set. n must not exceed the
// chunk width; n equal to the width yields all ones.
func lowMask[T Chunk](n uint) T {
	return T(1)<<n - 1
}

// clampRange truncates count to the bits remaining after pos. A count of
// All always clamps; pos at or past bitlen yields 0.
func clampRange(bitlen, pos, count uint) uint {
	if pos >= bitlen {
		return 0
	}
	if count > bitlen-pos {
		return bitlen - pos
	}
	return count
}

// ClearTail zeroes any bits beyond bitlen in the last chunk, restoring the
// trailing-padding invariant: whole-chunk comparisons and hashes are only
// meaningful while the padding stays zero.
func ClearTail[T Chunk](data []T, bitlen uint) {
	w := Width[T]()
	if tail := bitlen % w; tail != 0 {
		data[bitlen/w] &= Mask[T](0, tail)
	}
}

// Popcount returns the number of set bits in a single chunk.
func Popcount[T Chunk](v T) int {
	return bits.OnesCount64(uint64(v))
}

// Clz returns the number of leading zero bits in v, counted from the most
// significant side of the chunk type. Returns None if v is zero.
func Clz[T Chunk](v T) uint {
	if v == 0 {
		return None
	}
	return uint(bits.LeadingZeros64(uint64(v))) - (64 - Width[T]())
}
