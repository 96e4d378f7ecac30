package bitkit

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum64 returns a 64-bit content hash over the bit length and the chunk
// words. Chunks are fed in little-endian byte order so the hash is
// independent of the host byte order. Equal arrays hash equal; arrays of
// different bit lengths hash differently even for coinciding bit patterns,
// matching Equal.
func (a *BitArray) Sum64() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(a.bits))
	_, _ = d.Write(buf[:])
	for _, w := range a.words {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
