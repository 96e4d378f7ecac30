// Package bitkit provides an allocation-conscious packed bit array.
//
// A BitArray owns a contiguous buffer of 64-bit chunks holding a bit
// sequence ordered left to right: bit 0 is the most significant bit of the
// first chunk. On top of single-bit access it supports run operations,
// arbitrary-width integer store/extract, whole-array shifting, set-bit
// iteration, and base-2/4/8/16/32 text encoding.
//
// # Quick Start
//
//	a := bitkit.NewSized(10)
//	a.Set(0, true)
//	a.Set(9, true)
//	a.Store(2, 3, 7)               // write 0b111 at bits 2..4
//	v := a.Extract(0, 10)          // 0x2E1
//	s, _ := a.Text(16)             // "B84" (last digit right-padded)
//
// Subsets provide non-owning offset+length views over a parent array:
//
//	sub := bitkit.NewSubset(a, 1, 8)
//	sub.Set(2, true)               // mutates parent bit 3
//
// A subset stays valid only while its parent is alive and not resized.
//
// The chunk-level algorithms live in the bitops subpackage and are generic
// over the chunk type; the sparse subpackage adapts set-bit positions to
// roaring bitmaps.
//
// All operations are synchronous and unsynchronized: concurrent access to
// the same BitArray must be serialized by the caller.
package bitkit
