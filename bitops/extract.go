package bitops

// Store writes the low count bits of value into the array starting at pos,
// most significant extracted bit first. Bits of value beyond count are
// masked off before writing. count is capped at the width of U. A write
// running past bitlen is truncated, not an error; the return value is the
// number of bits actually written.
func Store[T, U Chunk](data []T, bitlen, pos, count uint, value U) uint {
	uw := Width[U]()
	if count > uw {
		count = uw
	}
	value &= lowMask[U](count)

	wr := clampRange(bitlen, pos, count)
	if wr == 0 {
		return 0
	}
	w := Width[T]()
	idx, off := pos/w, pos%w

	var used uint
	rest := wr
	for rest > 0 {
		n := min(w-off, rest)
		frag := T((value >> (count - used - n)) & lowMask[U](n))
		data[idx] = data[idx]&^Mask[T](off, n) | frag<<(w-off-n)
		used += n
		rest -= n
		idx++
		off = 0
	}
	return wr
}

// ExtractR reads count bits starting at pos and returns them right-aligned,
// forming a normal integer value. count is capped at the width of U.
//
// A read extending past bitlen still yields a value of the requested width:
// the out-of-range tail reads as zero. This zero-padding is deliberate and
// differs from ExtractL, which truncates instead; callers rely on reading
// past the end as zero-extension.
func ExtractR[T, U Chunk](data []T, bitlen, pos, count uint) U {
	uw := Width[U]()
	if count > uw {
		count = uw
	}
	w := Width[T]()

	var out U
	p := pos
	rest := count
	for rest > 0 {
		n := min(w-p%w, rest)
		var frag T
		if p < bitlen {
			frag = (data[p/w] >> (w - p%w - n)) & lowMask[T](n)
			// The run may cross bitlen inside this chunk. When bitlen is a
			// view bound rather than the buffer end the padding there is
			// live data, so mask it off explicitly.
			if avail := bitlen - p; avail < n {
				frag &^= lowMask[T](n - avail)
			}
		}
		out = out<<n | U(frag)
		p += n
		rest -= n
	}
	return out
}

// ExtractL reads count bits starting at pos and returns them left-aligned
// within U: bit 0 of the extracted range becomes the most significant bit
// of the result. count is capped at the width of U and truncated at bitlen.
func ExtractL[T, U Chunk](data []T, bitlen, pos, count uint) U {
	uw := Width[U]()
	if count > uw {
		count = uw
	}
	count = clampRange(bitlen, pos, count)
	if count == 0 {
		return 0
	}
	return ExtractR[T, U](data, bitlen, pos, count) << (uw - count)
}
