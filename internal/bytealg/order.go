package bytealg

import (
	"math/bits"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Order tells which end of a loaded word holds the byte with the lowest
// address. Every "first mismatching byte" question is answered here so the
// kernels never branch on endianness themselves.
type Order uint8

const (
	// LittleEndian words keep byte 0 in the least significant bits, so the
	// first mismatch is found by counting trailing zeros.
	LittleEndian Order = iota
	// BigEndian words keep byte 0 in the most significant bits, so the
	// first mismatch is found by counting leading zeros.
	BigEndian
)

// Native is the order produced by the Load functions on this platform.
var Native = nativeOrder()

func nativeOrder() Order {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

func (o Order) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// First64 returns the index of the first non-zero byte of the XOR word x,
// or 8 if x is zero.
func (o Order) First64(x uint64) int {
	if o == BigEndian {
		return bits.LeadingZeros64(x) >> 3
	}
	return bits.TrailingZeros64(x) >> 3
}

// First32 is First64 for 4-byte words; it returns 4 for zero.
func (o Order) First32(x uint32) int {
	if o == BigEndian {
		return bits.LeadingZeros32(x) >> 3
	}
	return bits.TrailingZeros32(x) >> 3
}

// First16 is First64 for 2-byte words; it returns 2 for zero.
func (o Order) First16(x uint16) int {
	if o == BigEndian {
		return bits.LeadingZeros16(x) >> 3
	}
	return bits.TrailingZeros16(x) >> 3
}

// First8 returns 0 for a non-zero x and 1 for zero. A single byte has no
// order.
func (o Order) First8(x uint8) int {
	return bits.TrailingZeros8(x) >> 3
}

// FirstByte dispatches to the First function matching the width of E.
func FirstByte[E Unsigned](o Order, x E) int {
	switch unsafe.Sizeof(x) {
	case 1:
		return o.First8(uint8(x))
	case 2:
		return o.First16(uint16(x))
	case 4:
		return o.First32(uint32(x))
	}
	return o.First64(uint64(x))
}

// Place positions the 8-bit mask of word w (out of words) inside a block
// mask so that, for either order, the block mask keeps the same layout as a
// single word: byte 0 at bit 0 for little-endian, at bit width-1 for
// big-endian.
func (o Order) Place(m uint8, w, words int) uint32 {
	if o == BigEndian {
		return uint32(m) << (8 * (words - 1 - w))
	}
	return uint32(m) << (8 * w)
}

// FirstInMask returns the index of the first mismatching byte recorded in
// the block mask m of the given width in bytes. m must be non-zero.
func (o Order) FirstInMask(m uint32, width int) int {
	if o == BigEndian {
		return bits.LeadingZeros32(m) - (32 - width)
	}
	return bits.TrailingZeros32(m)
}

// FirstOrWidth is FirstInMask with a sentinel bit placed just past the
// block, so the scanned value is never zero and an all-equal block reports
// width instead of needing a separate test.
func (o Order) FirstOrWidth(m uint32, width int) int {
	if o == BigEndian {
		return bits.LeadingZeros64(uint64(m)<<(64-width) | 1<<(63-width))
	}
	return bits.TrailingZeros64(uint64(m) | 1<<width)
}
