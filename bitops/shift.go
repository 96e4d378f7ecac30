package bitops

// ShiftL shifts the entire bit array left (toward bit 0) by n positions in
// place, zero-filling the vacated tail. Shifting by bitlen or more clears
// every bit.
func ShiftL[T Chunk](data []T, bitlen, n uint) {
	if bitlen == 0 || n == 0 {
		return
	}
	w := Width[T]()
	nc := uint(Chunks[T](bitlen))
	if n >= bitlen {
		for i := uint(0); i < nc; i++ {
			data[i] = 0
		}
		return
	}

	cs, bs := n/w, n%w
	if bs == 0 {
		copy(data[:nc-cs], data[cs:nc])
	} else {
		for i := uint(0); i < nc-cs; i++ {
			v := data[i+cs] << bs
			if i+cs+1 < nc {
				v |= data[i+cs+1] >> (w - bs)
			}
			data[i] = v
		}
	}
	for i := nc - cs; i < nc; i++ {
		data[i] = 0
	}
	ClearTail(data, bitlen)
}

// ShiftR shifts the entire bit array right (toward the end) by n positions
// in place, zero-filling from the front. Shifting by bitlen or more clears
// every bit. Bits pushed past bitlen are lost and the trailing padding is
// re-zeroed afterwards.
func ShiftR[T Chunk](data []T, bitlen, n uint) {
	if bitlen == 0 || n == 0 {
		return
	}
	w := Width[T]()
	nc := uint(Chunks[T](bitlen))
	if n >= bitlen {
		for i := uint(0); i < nc; i++ {
			data[i] = 0
		}
		return
	}

	cs, bs := n/w, n%w
	if bs == 0 {
		copy(data[cs:nc], data[:nc-cs])
	} else {
		for i := nc - 1; ; i-- {
			v := data[i-cs] >> bs
			if i-cs > 0 {
				v |= data[i-cs-1] << (w - bs)
			}
			data[i] = v
			if i == cs {
				break
			}
		}
	}
	for i := uint(0); i < cs; i++ {
		data[i] = 0
	}
	ClearTail(data, bitlen)
}
