package bitops

// Copy copies count bits from src starting at srcPos into dst starting at
// dstPos. Source and destination may be aligned differently within their
// chunk boundaries; realignment happens chunk-wide via ExtractR/Store pairs.
// The count is clamped to the bits remaining in both arrays and the number
// of bits copied is returned.
//
// dst and src must not alias overlapping ranges.
func Copy[T Chunk](dst []T, dstLen, dstPos uint, src []T, srcLen, srcPos, count uint) uint {
	count = clampRange(srcLen, srcPos, count)
	if c := clampRange(dstLen, dstPos, count); c < count {
		count = c
	}
	if count == 0 {
		return 0
	}
	w := Width[T]()

	var done uint
	for done < count {
		n := min(w, count-done)
		v := ExtractR[T, T](src, srcLen, srcPos+done, n)
		Store(dst, dstLen, dstPos+done, n, v)
		done += n
	}
	return count
}
