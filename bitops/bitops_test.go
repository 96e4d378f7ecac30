package bitops

import "testing"

func TestWidth(t *testing.T) {
	if w := Width[uint8](); w != 8 {
		t.Errorf("Width[uint8] = %d, want 8", w)
	}
	if w := Width[uint16](); w != 16 {
		t.Errorf("Width[uint16] = %d, want 16", w)
	}
	if w := Width[uint32](); w != 32 {
		t.Errorf("Width[uint32] = %d, want 32", w)
	}
	if w := Width[uint64](); w != 64 {
		t.Errorf("Width[uint64] = %d, want 64", w)
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		bitlen uint
		want   int
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{64, 8},
		{65, 9},
	}
	for _, tt := range tests {
		if got := Chunks[uint8](tt.bitlen); got != tt.want {
			t.Errorf("Chunks[uint8](%d) = %d, want %d", tt.bitlen, got, tt.want)
		}
	}
	if got := Chunks[uint64](65); got != 2 {
		t.Errorf("Chunks[uint64](65) = %d, want 2", got)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		start, count uint
		want         uint8
	}{
		{0, 0, 0x00},
		{0, 1, 0x80},
		{0, 8, 0xFF},
		{2, 3, 0x38},
		{7, 1, 0x01},
		{4, 4, 0x0F},
	}
	for _, tt := range tests {
		if got := Mask[uint8](tt.start, tt.count); got != tt.want {
			t.Errorf("Mask[uint8](%d, %d) = %#02x, want %#02x", tt.start, tt.count, got, tt.want)
		}
	}
}

func TestSafeMask(t *testing.T) {
	if got := SafeMask[uint8](6, 5); got != 0x03 {
		t.Errorf("SafeMask[uint8](6, 5) = %#02x, want 0x03", got)
	}
	if got := SafeMask[uint8](8, 1); got != 0 {
		t.Errorf("SafeMask[uint8](8, 1) = %#02x, want 0", got)
	}
	if got := SafeMask[uint64](0, 64); got != ^uint64(0) {
		t.Errorf("SafeMask[uint64](0, 64) = %#x, want all ones", got)
	}
}

func TestClearTail(t *testing.T) {
	data := []uint8{0xFF, 0xFF}
	ClearTail(data, 10)
	if data[0] != 0xFF || data[1] != 0xC0 {
		t.Errorf("ClearTail(10) = %#02x %#02x, want 0xff 0xc0", data[0], data[1])
	}

	// Whole-chunk lengths leave everything alone.
	data = []uint8{0xFF, 0xFF}
	ClearTail(data, 16)
	if data[1] != 0xFF {
		t.Errorf("ClearTail(16) touched a full chunk: %#02x", data[1])
	}
}

func TestPopcount(t *testing.T) {
	if got := Popcount(uint8(0xB8)); got != 4 {
		t.Errorf("Popcount(0xb8) = %d, want 4", got)
	}
	if got := Popcount(^uint64(0)); got != 64 {
		t.Errorf("Popcount(max uint64) = %d, want 64", got)
	}
	if got := Popcount(uint16(0)); got != 0 {
		t.Errorf("Popcount(0) = %d, want 0", got)
	}
}

func TestClz(t *testing.T) {
	if got := Clz(uint8(0)); got != None {
		t.Errorf("Clz(0) = %d, want None", got)
	}
	if got := Clz(uint8(0x80)); got != 0 {
		t.Errorf("Clz(0x80) = %d, want 0", got)
	}
	if got := Clz(uint8(0x01)); got != 7 {
		t.Errorf("Clz(0x01) = %d, want 7", got)
	}
	if got := Clz(uint64(1)); got != 63 {
		t.Errorf("Clz(uint64(1)) = %d, want 63", got)
	}
	if got := Clz(uint32(0x00010000)); got != 15 {
		t.Errorf("Clz(0x00010000) = %d, want 15", got)
	}
}
