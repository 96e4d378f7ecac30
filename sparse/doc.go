// Package sparse adapts set-bit positions to compressed sparse bitmaps.
//
// Bitmap wraps a roaring bitmap for workloads where the packed BitArray
// representation is wasteful: very large universes with few set bits.
// Conversions to and from bitkit.BitArray and bits-and-blooms bitsets are
// lossless over the set-bit positions; the packed side additionally carries
// a bit length, which the sparse side does not.
package sparse
