package bitkit

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/bitkit/bitops"
)

// The numeral alphabet covers bases 2, 4, 8, 16 and 32: digits 0-9A-V.
// Input is case-insensitive; output is uppercase unless the base is offset
// by LowercaseBase.
const (
	digitsUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	digitsLower = "0123456789abcdefghijklmnopqrstuv"

	// LowercaseBase added to a base selects lowercase output digits,
	// e.g. 16+LowercaseBase formats lowercase hex.
	LowercaseBase = 100
)

// digitBits returns the number of bits per digit for a supported base,
// or 0 for an unsupported one.
func digitBits(base int) uint {
	switch base {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	case 32:
		return 5
	}
	return 0
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'A' && c <= 'V':
		return uint64(c-'A') + 10, true
	case c >= 'a' && c <= 'v':
		return uint64(c-'a') + 10, true
	}
	return 0, false
}

// Load parses a base-2/4/8/16/32 numeral string into bit content, resizing
// the array to exactly digits*log2(base) bits, and returns the number of
// bits loaded. Leading and trailing spaces and tabs are ignored; digits are
// case-insensitive and unprefixed.
//
// On error the returned count is 0 and the array content is undefined: the
// array has already been resized and partially written. Fail fast, no
// rollback.
func (a *BitArray) Load(s string, base int) (uint, error) {
	if base >= LowercaseBase {
		base -= LowercaseBase
	}
	bpd := digitBits(base)
	if bpd == 0 {
		return 0, ErrInvalidBase
	}
	s = strings.Trim(s, " \t")

	n := uint(len(s)) * bpd
	a.Resize(n)
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= uint64(base) {
			return 0, &DigitError{Pos: i, Digit: s[i]}
		}
		bitops.Store(a.words, a.bits, uint(i)*bpd, bpd, d)
	}
	return n, nil
}

// Format renders the bit content as a base-N numeral, most significant bit
// of the sequence first, and returns the number of bytes written. When the
// bit length is not a multiple of the digit width the final digit is
// zero-padded on the right, i.e. the padding bits conceptually follow the
// real data.
//
// Output is streamed through a fixed internal buffer, so arbitrarily large
// arrays never need a contiguous allocation of the whole result.
func (a *BitArray) Format(w io.Writer, base int) (int, error) {
	alphabet := digitsUpper
	if base >= LowercaseBase {
		base -= LowercaseBase
		alphabet = digitsLower
	}
	bpd := digitBits(base)
	if bpd == 0 {
		return 0, ErrInvalidBase
	}

	var buf [128]byte
	var total, k int
	digits := (a.bits + bpd - 1) / bpd
	for i := uint(0); i < digits; i++ {
		// ExtractR zero-fills past the end, which right-pads the final
		// partial digit for free.
		d := bitops.ExtractR[uint64, uint64](a.words, a.bits, i*bpd, bpd)
		buf[k] = alphabet[d]
		k++
		if k == len(buf) {
			n, err := w.Write(buf[:k])
			total += n
			if err != nil {
				return total, err
			}
			k = 0
		}
	}
	if k > 0 {
		n, err := w.Write(buf[:k])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Text returns the base-N numeral representation as a string.
func (a *BitArray) Text(base int) (string, error) {
	var sb strings.Builder
	if _, err := a.Format(&sb, base); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// AppendText appends the base-N numeral representation to dst and returns
// the extended slice.
func (a *BitArray) AppendText(dst []byte, base int) ([]byte, error) {
	alphabet := digitsUpper
	if base >= LowercaseBase {
		base -= LowercaseBase
		alphabet = digitsLower
	}
	bpd := digitBits(base)
	if bpd == 0 {
		return dst, ErrInvalidBase
	}
	digits := (a.bits + bpd - 1) / bpd
	for i := uint(0); i < digits; i++ {
		d := bitops.ExtractR[uint64, uint64](a.words, a.bits, i*bpd, bpd)
		dst = append(dst, alphabet[d])
	}
	return dst, nil
}

// String returns a debug form: the bit length followed by the hex digits.
func (a *BitArray) String() string {
	if a.IsNull() {
		return "(null)"
	}
	s, _ := a.Text(16)
	return fmt.Sprintf("(%d) %s", a.bits, s)
}
