package extend

import (
	"unsafe"

	"github.com/mhr3/extend/internal/bytealg"
	"github.com/mhr3/extend/seq"
)

// block fixes the vector width of a kernel at instantiation time: 8, 16 or
// 32 bytes, loaded as that many 64-bit words. Only the length of the array
// type is used.
type block interface {
	[1]uint64 | [2]uint64 | [4]uint64
}

func blockWords[B block]() int {
	var b B
	return len(b)
}

// blockXOR builds the per-byte mismatch mask of every block and stops at
// the first non-zero mask.
func blockXOR[B block](pa, pb unsafe.Pointer, cnt int) int {
	words := blockWords[B]()
	width := 8 * words
	for {
		if m := bytealg.NeMask(pa, pb, cnt, words); m != 0 {
			return cnt + bytealg.Native.FirstInMask(m, width)
		}
		cnt += width
	}
}

// blockEq tests whole blocks for equality and builds the mask only for the
// block that differs.
func blockEq[B block](pa, pb unsafe.Pointer, cnt int) int {
	words := blockWords[B]()
	width := 8 * words
	for bytealg.BlockEqual(pa, pb, cnt, words) {
		cnt += width
	}
	m := bytealg.NeMask(pa, pb, cnt, words)
	return cnt + bytealg.Native.FirstInMask(m, width)
}

// blockNZ scans every mask with a sentinel bit past the block, so the scan
// itself says whether the block matched.
func blockNZ[B block](pa, pb unsafe.Pointer, cnt int) int {
	words := blockWords[B]()
	width := 8 * words
	for {
		m := bytealg.NeMask(pa, pb, cnt, words)
		n := bytealg.Native.FirstOrWidth(m, width)
		cnt += n
		if n != width {
			return cnt
		}
	}
}

// S64Unchecked compares 8-byte blocks through a per-byte mismatch mask.
func S64Unchecked(a seq.PaddedA, b seq.PaddedB) int { return blockXOR[[1]uint64](a.Ptr(), b.Ptr(), 0) }

// S64UncheckedEq tests 8-byte blocks for equality before building a mask.
func S64UncheckedEq(a seq.PaddedA, b seq.PaddedB) int { return blockEq[[1]uint64](a.Ptr(), b.Ptr(), 0) }

// S64UncheckedNZ scans 8-byte block masks with a sentinel bit.
func S64UncheckedNZ(a seq.PaddedA, b seq.PaddedB) int { return blockNZ[[1]uint64](a.Ptr(), b.Ptr(), 0) }

// S128Unchecked compares 16-byte blocks through a per-byte mismatch mask.
func S128Unchecked(a seq.PaddedA, b seq.PaddedB) int { return blockXOR[[2]uint64](a.Ptr(), b.Ptr(), 0) }

// S128UncheckedEq tests 16-byte blocks for equality before building a mask.
func S128UncheckedEq(a seq.PaddedA, b seq.PaddedB) int { return blockEq[[2]uint64](a.Ptr(), b.Ptr(), 0) }

// S128UncheckedNZ scans 16-byte block masks with a sentinel bit.
func S128UncheckedNZ(a seq.PaddedA, b seq.PaddedB) int { return blockNZ[[2]uint64](a.Ptr(), b.Ptr(), 0) }

// S256Unchecked compares 32-byte blocks through a per-byte mismatch mask.
func S256Unchecked(a seq.PaddedA, b seq.PaddedB) int { return blockXOR[[4]uint64](a.Ptr(), b.Ptr(), 0) }

// S256UncheckedEq tests 32-byte blocks for equality before building a mask.
func S256UncheckedEq(a seq.PaddedA, b seq.PaddedB) int { return blockEq[[4]uint64](a.Ptr(), b.Ptr(), 0) }

// S256UncheckedNZ scans 32-byte block masks with a sentinel bit.
func S256UncheckedNZ(a seq.PaddedA, b seq.PaddedB) int { return blockNZ[[4]uint64](a.Ptr(), b.Ptr(), 0) }
