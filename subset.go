package bitkit

import (
	"iter"
	"math/bits"

	"github.com/hupe1980/bitkit/bitops"
)

// Subset is a non-owning offset+length view into a parent BitArray. It
// holds no buffer of its own and imposes no lifetime control: the caller
// must keep the parent alive and must not resize it while the subset is in
// use; a subset over a shrunk or reallocated parent is invalid.
//
// The window is clamped to the parent's bit length at construction time
// and never re-clamped. All operations forward to the chunk algorithms
// with the composed offset and the window end as the bound, so
// out-of-window access is rejected like any out-of-range access.
//
// A subset constructed read-only carries no write reference: its mutators
// are no-ops reporting false or zero bits modified.
type Subset struct {
	rd  *BitArray
	wr  *BitArray // nil when read-only
	off uint
	n   uint
}

// NewSubset returns a read-write view of n bits of parent starting at off,
// clamped to the parent's current length. A count of bitops.All extends
// the window to the end.
func NewSubset(parent *BitArray, off, n uint) *Subset {
	s := newSubset(parent, off, n)
	s.wr = parent
	return s
}

// NewReadOnlySubset returns a read-only view; all mutating calls on it
// fail without touching the parent.
func NewReadOnlySubset(parent *BitArray, off, n uint) *Subset {
	return newSubset(parent, off, n)
}

func newSubset(parent *BitArray, off, n uint) *Subset {
	if off > parent.bits {
		off = parent.bits
	}
	if n > parent.bits-off {
		n = parent.bits - off
	}
	return &Subset{rd: parent, off: off, n: n}
}

// Subset returns a sub-view of this view, composing the offsets and
// clamping to the outer window. Writability is inherited.
func (s *Subset) Subset(off, n uint) *Subset {
	if off > s.n {
		off = s.n
	}
	if n > s.n-off {
		n = s.n - off
	}
	return &Subset{rd: s.rd, wr: s.wr, off: s.off + off, n: n}
}

// ReadOnlySubset is like Subset but drops writability.
func (s *Subset) ReadOnlySubset(off, n uint) *Subset {
	sub := s.Subset(off, n)
	sub.wr = nil
	return sub
}

// Len returns the window length in bits.
func (s *Subset) Len() uint { return s.n }

// Offset returns the window offset within the root parent.
func (s *Subset) Offset() uint { return s.off }

// ReadOnly reports whether mutating calls are rejected.
func (s *Subset) ReadOnly() bool { return s.wr == nil }

// bound is the bit length handed to the chunk algorithms: the absolute end
// of the window, never past the parent's length.
func (s *Subset) bound() uint { return s.off + s.n }

// Get returns the bit at the window-local pos, or false out of range.
func (s *Subset) Get(pos uint) bool {
	if pos >= s.n {
		return false
	}
	return bitops.Get(s.rd.words, s.bound(), s.off+pos)
}

// Set sets or clears a bit; false if read-only or out of range.
func (s *Subset) Set(pos uint, v bool) bool {
	if s.wr == nil || pos >= s.n {
		return false
	}
	return bitops.Set(s.wr.words, s.bound(), s.off+pos, v)
}

// SetRange sets or clears count bits from pos, clamped to the window, and
// returns the number modified. Zero if read-only.
func (s *Subset) SetRange(pos, count uint, v bool) uint {
	if s.wr == nil || pos >= s.n {
		return 0
	}
	return bitops.SetRange(s.wr.words, s.bound(), s.off+pos, count, v)
}

// Toggle inverts a bit; false if read-only or out of range.
func (s *Subset) Toggle(pos uint) bool {
	if s.wr == nil || pos >= s.n {
		return false
	}
	return bitops.Toggle(s.wr.words, s.bound(), s.off+pos)
}

// ToggleRange inverts count bits from pos, clamped to the window, and
// returns the number modified. Zero if read-only.
func (s *Subset) ToggleRange(pos, count uint) uint {
	if s.wr == nil || pos >= s.n {
		return 0
	}
	return bitops.ToggleRange(s.wr.words, s.bound(), s.off+pos, count)
}

// Count returns the number of bits with value v in the window.
func (s *Subset) Count(v bool) uint {
	return s.CountRange(0, bitops.All, v)
}

// CountRange counts bits with value v in the clamped run.
func (s *Subset) CountRange(pos, count uint, v bool) uint {
	if pos >= s.n {
		return 0
	}
	return bitops.Count(s.rd.words, s.bound(), s.off+pos, count, v)
}

// All reports whether every window bit is set; vacuously true when empty.
func (s *Subset) All() bool { return s.AllRange(0, bitops.All) }

// AllRange reports whether every bit of the clamped run is set.
func (s *Subset) AllRange(pos, count uint) bool {
	if pos >= s.n {
		return true
	}
	return bitops.AllSet(s.rd.words, s.bound(), s.off+pos, count)
}

// Any reports whether at least one window bit is set.
func (s *Subset) Any() bool { return s.AnyRange(0, bitops.All) }

// AnyRange reports whether at least one bit of the clamped run is set.
func (s *Subset) AnyRange(pos, count uint) bool {
	if pos >= s.n {
		return false
	}
	return bitops.AnySet(s.rd.words, s.bound(), s.off+pos, count)
}

// Store writes the low count bits of v at the window-local pos, truncating
// at the window end, and returns the bits written. Zero if read-only.
func (s *Subset) Store(pos, count uint, v uint64) uint {
	if s.wr == nil || pos >= s.n {
		return 0
	}
	return bitops.Store(s.wr.words, s.bound(), s.off+pos, count, v)
}

// Extract reads count bits (at most 64) from the window-local pos,
// right-aligned; reads past the window end are zero-padded.
func (s *Subset) Extract(pos, count uint) uint64 {
	if pos >= s.n {
		return 0
	}
	return bitops.ExtractR[uint64, uint64](s.rd.words, s.bound(), s.off+pos, count)
}

// ExtractLeft reads count bits (at most 64) from the window-local pos,
// left-aligned; the count truncates at the window end.
func (s *Subset) ExtractLeft(pos, count uint) uint64 {
	if pos >= s.n {
		return 0
	}
	return bitops.ExtractL[uint64, uint64](s.rd.words, s.bound(), s.off+pos, count)
}

// Ones returns a sequence of the set bit positions within the window, in
// window-local coordinates.
func (s *Subset) Ones() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for p := uint(0); p < s.n; p += wordBits {
			n := min(uint(wordBits), s.n-p)
			run := s.Extract(p, n)
			// Walk the run left to right; the extracted value is
			// right-aligned, so local bit i sits at position n-1-i.
			for run != 0 {
				i := uint(63 - bits.LeadingZeros64(run))
				run &^= 1 << i
				if !yield(p + n - 1 - i) {
					return
				}
			}
		}
	}
}

// Equal compares two windows bit for bit. Windows of different lengths are
// never equal. When both windows share the same intra-chunk offset the raw
// chunks are compared directly under leading and trailing masks; otherwise
// the right-hand side is realigned chunk-wide via extraction.
func (s *Subset) Equal(o *Subset) bool {
	if s.n != o.n {
		return false
	}
	if s.n == 0 {
		return true
	}
	if s.off%wordBits != o.off%wordBits {
		return s.equalSlow(o)
	}

	sw, ow := s.rd.words, o.rd.words
	si, oi := s.off/wordBits, o.off/wordBits
	off := s.off % wordBits

	rest := s.n
	n := min(wordBits-off, rest)
	if m := bitops.Mask[uint64](off, n); (sw[si]^ow[oi])&m != 0 {
		return false
	}
	rest -= n
	si++
	oi++

	for rest >= wordBits {
		if sw[si] != ow[oi] {
			return false
		}
		rest -= wordBits
		si++
		oi++
	}
	if rest > 0 {
		if m := bitops.Mask[uint64](0, rest); (sw[si]^ow[oi])&m != 0 {
			return false
		}
	}
	return true
}

func (s *Subset) equalSlow(o *Subset) bool {
	for p := uint(0); p < s.n; p += wordBits {
		n := min(uint(wordBits), s.n-p)
		if s.Extract(p, n) != o.Extract(p, n) {
			return false
		}
	}
	return true
}
