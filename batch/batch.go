// Package batch evaluates many independent extend probes at once.
//
// A probe function gathers one fixed-width element per lane from a at
// is[k] and from b at js[k], and reports per lane how many leading bytes
// (in memory order) of the two elements are equal: the element width W if
// they match, the index of the first differing byte otherwise. It performs
// exactly one step; callers advance the lanes that returned W and probe
// again, as Extender does.
//
// Probes are unchecked: offsets are not validated and each gather reads W
// bytes starting at the offset, so every offset must be at most Len() of
// its sequence (the padding covers the rest).
package batch

import (
	"github.com/mhr3/extend/internal/bytealg"
	"github.com/mhr3/extend/seq"
)

// Lanes are the supported lane vectors. K lanes of E-sized elements fill
// one 32-byte register: 8 x 32-bit, 16 x 16-bit, 32 x 8-bit.
type Lanes interface {
	[8]int32 | [16]int32 | [32]int32
}

// Func is the uniform signature of a K-lane probe.
type Func[L Lanes] func(a seq.PaddedA, b seq.PaddedB, is, js L) L

// U32Once probes 8 lanes with 4-byte elements. Each lane reports 0..4.
func U32Once(a seq.PaddedA, b seq.PaddedB, is, js [8]int32) [8]int32 {
	return once[[8]int32, uint32](a, b, is, js)
}

// U16Once probes 16 lanes with 2-byte elements. Each lane reports 0..2.
func U16Once(a seq.PaddedA, b seq.PaddedB, is, js [16]int32) [16]int32 {
	return once[[16]int32, uint16](a, b, is, js)
}

// U8Once probes 32 lanes with single bytes. Each lane reports 0 or 1.
func U8Once(a seq.PaddedA, b seq.PaddedB, is, js [32]int32) [32]int32 {
	return once[[32]int32, uint8](a, b, is, js)
}

func once[L Lanes, E bytealg.Unsigned](a seq.PaddedA, b seq.PaddedB, is, js L) L {
	pa, pb := a.Ptr(), b.Ptr()
	var out L
	for k := 0; k < len(out); k++ {
		x := bytealg.Load[E](pa, int(is[k])) ^ bytealg.Load[E](pb, int(js[k]))
		out[k] = int32(bytealg.FirstByte(bytealg.Native, x))
	}
	return out
}
