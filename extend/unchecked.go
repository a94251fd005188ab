package extend

import (
	"unsafe"

	"github.com/mhr3/extend/internal/bytealg"
	"github.com/mhr3/extend/seq"
)

// The kernels in this file are unchecked: they scan until a mismatch and
// rely on the differing seq.PaddedA/PaddedB fills to stop within the padding.

// NaiveUnchecked advances both pointers one byte per step.
func NaiveUnchecked(a seq.PaddedA, b seq.PaddedB) int {
	pa, pb := a.Ptr(), b.Ptr()
	cnt := 0
	for bytealg.Load8(pa, 0) == bytealg.Load8(pb, 0) {
		cnt++
		pa, pb = unsafe.Add(pa, 1), unsafe.Add(pb, 1)
	}
	return cnt
}

// ScalarUnchecked indexes both sequences one byte per step.
func ScalarUnchecked(a seq.PaddedA, b seq.PaddedB) int {
	pa, pb := a.Ptr(), b.Ptr()
	cnt := 0
	for bytealg.Load8(pa, cnt) == bytealg.Load8(pb, cnt) {
		cnt++
	}
	return cnt
}

// U64Unchecked XORs 8-byte words and stops at the first non-zero result.
func U64Unchecked(a seq.PaddedA, b seq.PaddedB) int {
	return u64xor(a.Ptr(), b.Ptr(), 0)
}

// U64UncheckedEq compares 8-byte words for equality and computes the XOR
// only once they differ.
func U64UncheckedEq(a seq.PaddedA, b seq.PaddedB) int {
	return u64eq(a.Ptr(), b.Ptr(), 0)
}

// U64UncheckedEqIf0 returns early when the first bytes differ, then runs
// U64UncheckedEq from offset 0.
func U64UncheckedEqIf0(a seq.PaddedA, b seq.PaddedB) int {
	pa, pb := a.Ptr(), b.Ptr()
	if bytealg.Load8(pa, 0) != bytealg.Load8(pb, 0) {
		return 0
	}
	return u64eq(pa, pb, 0)
}

// U64UncheckedEqIf1 is U64UncheckedEqIf0 but resumes the word loop at
// offset 1, skipping the byte it already compared.
func U64UncheckedEqIf1(a seq.PaddedA, b seq.PaddedB) int {
	pa, pb := a.Ptr(), b.Ptr()
	if bytealg.Load8(pa, 0) != bytealg.Load8(pb, 0) {
		return 0
	}
	return u64eq(pa, pb, 1)
}

// Hybrid probes a single word first and only enters the 32-byte block loop
// when that word matched, so short matches skip the block setup.
func Hybrid(a seq.PaddedA, b seq.PaddedB) int {
	pa, pb := a.Ptr(), b.Ptr()
	if x := bytealg.Load64(pa, 0) ^ bytealg.Load64(pb, 0); x != 0 {
		return bytealg.Native.First64(x)
	}
	return blockEq[[4]uint64](pa, pb, 8)
}

func u64xor(pa, pb unsafe.Pointer, cnt int) int {
	for {
		x := bytealg.Load64(pa, cnt) ^ bytealg.Load64(pb, cnt)
		if x != 0 {
			return cnt + bytealg.Native.First64(x)
		}
		cnt += 8
	}
}

func u64eq(pa, pb unsafe.Pointer, cnt int) int {
	for {
		wa, wb := bytealg.Load64(pa, cnt), bytealg.Load64(pb, cnt)
		if wa != wb {
			return cnt + bytealg.Native.First64(wa^wb)
		}
		cnt += 8
	}
}
