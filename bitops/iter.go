package bitops

import "iter"

// Iter walks the set bits of a bit array in ascending position order
// without rescanning from the start on each step. The cached chunk has
// already-visited bits cleared, so Next resumes with a leading-zero count
// on the remainder.
type Iter[T Chunk] struct {
	data   []T
	bitlen uint
	word   T
	idx    uint
}

// NewIter returns an iterator positioned before the first set bit.
func NewIter[T Chunk](data []T, bitlen uint) *Iter[T] {
	it := &Iter[T]{data: data[:Chunks[T](bitlen)], bitlen: bitlen}
	if len(it.data) > 0 {
		it.word = it.data[0]
	}
	return it
}

// Next returns the position of the next set bit, or false when exhausted.
func (it *Iter[T]) Next() (uint, bool) {
	w := Width[T]()
	for {
		if it.word != 0 {
			off := Clz(it.word)
			pos := it.idx*w + off
			if pos >= it.bitlen {
				// Stray bits in the trailing padding of a raw caller
				// buffer; the sequence ends at bitlen regardless.
				return 0, false
			}
			it.word &^= T(1) << (w - 1 - off)
			return pos, true
		}
		it.idx++
		if it.idx >= uint(len(it.data)) {
			return 0, false
		}
		it.word = it.data[it.idx]
	}
}

// Ones returns a range-over-func sequence of the set bit positions.
func Ones[T Chunk](data []T, bitlen uint) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		it := NewIter(data, bitlen)
		for pos, ok := it.Next(); ok; pos, ok = it.Next() {
			if !yield(pos) {
				return
			}
		}
	}
}
