// Package bitops implements stateless bit-array algorithms over a
// caller-owned slice of unsigned integer chunks.
//
// A chunk slice is treated as a flat bit sequence ordered left to right:
// bit 0 is the most significant bit of chunk 0, bit W-1 (W = chunk width)
// is its least significant bit, bit W is the most significant bit of
// chunk 1, and so on. This ordering is independent of host byte order and
// matches the reading order of formatted output.
//
// Every operation takes the data slice together with the bit length of the
// owning buffer; the slice must hold at least Chunks(bitlen) chunks.
// Positions are zero-based. A count of All means "to the end of the
// addressable range". Out-of-range positions and counts are bounds-checked:
// operations no-op, return false/0, or truncate the count, but never touch
// memory out of range.
//
// The package is generic over the chunk type. Higher layers that do not
// need chunk-type flexibility (see the parent package) fix uint64.
package bitops
