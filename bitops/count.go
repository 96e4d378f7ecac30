package bitops

// Count returns the number of bits with value v in the run of count bits
// starting at pos. The run is clamped to the remaining length. Ones are
// counted per chunk with partial chunks masked first; zero counts derive
// from the clamped run length.
func Count[T Chunk](data []T, bitlen, pos, count uint, v bool) uint {
	count = clampRange(bitlen, pos, count)
	if count == 0 {
		return 0
	}
	w := Width[T]()
	idx, off := pos/w, pos%w

	var ones uint
	rest := count
	n := min(w-off, rest)
	ones += uint(Popcount(data[idx] & Mask[T](off, n)))
	rest -= n
	idx++

	for rest >= w {
		ones += uint(Popcount(data[idx]))
		rest -= w
		idx++
	}
	if rest > 0 {
		ones += uint(Popcount(data[idx] & Mask[T](0, rest)))
	}

	if !v {
		return count - ones
	}
	return ones
}

// AllSet reports whether every bit in the run of count bits starting at pos
// is set. An empty or fully out-of-range run is vacuously true.
func AllSet[T Chunk](data []T, bitlen, pos, count uint) bool {
	count = clampRange(bitlen, pos, count)
	if count == 0 {
		return true
	}
	w := Width[T]()
	idx, off := pos/w, pos%w

	rest := count
	n := min(w-off, rest)
	if m := Mask[T](off, n); data[idx]&m != m {
		return false
	}
	rest -= n
	idx++

	for rest >= w {
		if data[idx] != ^T(0) {
			return false
		}
		rest -= w
		idx++
	}
	if rest > 0 {
		if m := Mask[T](0, rest); data[idx]&m != m {
			return false
		}
	}
	return true
}

// AnySet reports whether at least one bit in the run of count bits starting
// at pos is set. The scan short-circuits on the first hit.
func AnySet[T Chunk](data []T, bitlen, pos, count uint) bool {
	count = clampRange(bitlen, pos, count)
	if count == 0 {
		return false
	}
	w := Width[T]()
	idx, off := pos/w, pos%w

	rest := count
	n := min(w-off, rest)
	if data[idx]&Mask[T](off, n) != 0 {
		return true
	}
	rest -= n
	idx++

	for rest >= w {
		if data[idx] != 0 {
			return true
		}
		rest -= w
		idx++
	}
	return rest > 0 && data[idx]&Mask[T](0, rest) != 0
}
