// Package seq defines the sequence types accepted by the extend kernels.
//
// Checked kernels take plain []byte. Unchecked kernels take a PaddedA for
// their first argument and a PaddedB for their second. Both record that the
// backing array continues for Padding bytes after the logical end, filled
// with FillA and FillB respectively. Because the two fills differ, an
// unchecked scan can never match padding against padding:
//
//   - for sequences of equal length it stops at the logical end;
//   - otherwise it stops within Padding bytes of the shorter end unless the
//     longer sequence repeats the shorter one's fill byte for Padding bytes
//     at that position, which is the caller's precondition to avoid.
//
// Giving both sides the same fill would let equal sequences run through the
// padding and beyond, so the two sides are distinct types and there is no
// way to construct such a pair.
package seq

import "unsafe"

// Padding is the number of fill bytes after the end of a padded sequence.
// It covers the widest block (32 bytes) any kernel loads.
const Padding = 32

const (
	FillA byte = 0x00
	FillB byte = 0xff
)

type padded struct {
	b []byte
}

// PaddedA is the first operand of an unchecked kernel: a read-only view
// followed by Padding bytes of FillA. The zero value must not be passed to
// unchecked kernels.
type PaddedA struct {
	padded
}

// PaddedB is the second operand of an unchecked kernel, padded with FillB.
type PaddedB struct {
	padded
}

func padFill(b []byte, fill byte) padded {
	buf := make([]byte, len(b), len(b)+Padding)
	copy(buf, b)
	fillTail(buf, fill)
	return padded{b: buf}
}

func fillTail(b []byte, fill byte) {
	tail := b[len(b) : len(b)+Padding]
	for i := range tail {
		tail[i] = fill
	}
}

// PadA copies b into a new buffer padded with FillA.
func PadA(b []byte) PaddedA { return PaddedA{padFill(b, FillA)} }

// PadB copies b into a new buffer padded with FillB.
func PadB(b []byte) PaddedB { return PaddedB{padFill(b, FillB)} }

// PadPair is PadA(a), PadB(b).
func PadPair(a, b []byte) (PaddedA, PaddedB) {
	return PadA(a), PadB(b)
}

func wrap(b []byte, fill byte) padded {
	if cap(b)-len(b) < Padding {
		panic("seq: slice capacity leaves less than Padding bytes after its length")
	}
	fillTail(b, fill)
	return padded{b: b}
}

// WrapA wraps b without copying and writes FillA into the Padding bytes
// after len(b). It panics unless cap(b) leaves room for them. The caller
// must not write past len(b) while the view is in use.
func WrapA(b []byte) PaddedA { return PaddedA{wrap(b, FillA)} }

// WrapB is WrapA with FillB.
func WrapB(b []byte) PaddedB { return PaddedB{wrap(b, FillB)} }

// Bytes returns the logical contents. The result has no spare capacity, so
// appending to it copies instead of overwriting the padding.
func (p padded) Bytes() []byte { return p.b[:len(p.b):len(p.b)] }

// Len returns the logical length.
func (p padded) Len() int { return len(p.b) }

// Ptr returns the address of the first byte. Reads up to Len()+Padding
// bytes from it are valid.
func (p padded) Ptr() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(p.b))
}

// Slice returns the suffix starting at i. The padding is shared with p.
func (p PaddedA) Slice(i int) PaddedA { return PaddedA{padded{b: p.b[i:]}} }

// Slice returns the suffix starting at i. The padding is shared with p.
func (p PaddedB) Slice(i int) PaddedB { return PaddedB{padded{b: p.b[i:]}} }
