package bytealg

import "unsafe"

const (
	low7  = 0x7f7f7f7f7f7f7f7f
	high  = 0x8080808080808080
	spray = 0x0102040810204080
)

// MoveMask8 returns an 8-bit mask with bit i set when byte i (in register
// order) of x is non-zero. It is the SWAR form of a byte-wise
// compare-and-movemask: feeding it a^b yields the inverted equality mask.
//
// Unlike the usual has-zero trick the result is exact for every byte; the
// addition never carries across byte boundaries.
func MoveMask8(x uint64) uint8 {
	t := (((x & low7) + low7) | x) & high
	return uint8(((t >> 7) * spray) >> 56)
}

// NeMask compares words 8-byte words of p and q starting at off and returns
// the per-byte mismatch mask of the block laid out by Native.Place.
func NeMask(p, q unsafe.Pointer, off, words int) uint32 {
	var m uint32
	for w := 0; w < words; w++ {
		x := Load64(p, off+8*w) ^ Load64(q, off+8*w)
		m |= Native.Place(MoveMask8(x), w, words)
	}
	return m
}

// BlockEqual reports whether words 8-byte words of p and q starting at off
// are identical. It costs one OR per word and no mask construction.
func BlockEqual(p, q unsafe.Pointer, off, words int) bool {
	var x uint64
	for w := 0; w < words; w++ {
		x |= Load64(p, off+8*w) ^ Load64(q, off+8*w)
	}
	return x == 0
}
