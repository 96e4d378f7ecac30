package bitops

// Get returns the bit at pos, or false if pos is at or past bitlen.
func Get[T Chunk](data []T, bitlen, pos uint) bool {
	if pos >= bitlen {
		return false
	}
	w := Width[T]()
	return data[pos/w]&(T(1)<<(w-1-pos%w)) != 0
}

// Set sets or clears the bit at pos and reports whether pos was in range.
func Set[T Chunk](data []T, bitlen, pos uint, v bool) bool {
	if pos >= bitlen {
		return false
	}
	w := Width[T]()
	m := T(1) << (w - 1 - pos%w)
	if v {
		data[pos/w] |= m
	} else {
		data[pos/w] &^= m
	}
	return true
}

// SetRange sets or clears a contiguous run of count bits starting at pos
// and returns the number of bits actually modified. The run is clamped to
// the remaining length; runs spanning several chunks are handled with
// partial masks on the leading and trailing chunk.
func SetRange[T Chunk](data []T, bitlen, pos, count uint, v bool) uint {
	count = clampRange(bitlen, pos, count)
	if count == 0 {
		return 0
	}
	w := Width[T]()
	idx, off := pos/w, pos%w

	rest := count
	n := min(w-off, rest)
	if v {
		data[idx] |= Mask[T](off, n)
	} else {
		data[idx] &^= Mask[T](off, n)
	}
	rest -= n
	idx++

	for rest >= w {
		if v {
			data[idx] = ^T(0)
		} else {
			data[idx] = 0
		}
		rest -= w
		idx++
	}
	if rest > 0 {
		if v {
			data[idx] |= Mask[T](0, rest)
		} else {
			data[idx] &^= Mask[T](0, rest)
		}
	}
	return count
}

// Toggle inverts the bit at pos and reports whether pos was in range.
func Toggle[T Chunk](data []T, bitlen, pos uint) bool {
	if pos >= bitlen {
		return false
	}
	w := Width[T]()
	data[pos/w] ^= T(1) << (w - 1 - pos%w)
	return true
}

// ToggleRange inverts a contiguous run of count bits starting at pos and
// returns the number of bits actually modified.
func ToggleRange[T Chunk](data []T, bitlen, pos, count uint) uint {
	count = clampRange(bitlen, pos, count)
	if count == 0 {
		return 0
	}
	w := Width[T]()
	idx, off := pos/w, pos%w

	rest := count
	n := min(w-off, rest)
	data[idx] ^= Mask[T](off, n)
	rest -= n
	idx++

	for rest >= w {
		data[idx] = ^data[idx]
		rest -= w
		idx++
	}
	if rest > 0 {
		data[idx] ^= Mask[T](0, rest)
	}
	return count
}
