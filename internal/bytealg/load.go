// Package bytealg holds the read primitives shared by the extend kernels:
// native-order loads that skip bounds checks, per-byte mismatch masks and
// the byte-order policy used to locate the first mismatching byte.
package bytealg

import (
	"encoding/binary"
	"unsafe"
)

// The loads below read through p+off without checking the length of the
// underlying slice. Callers must guarantee that the whole word lies inside
// the allocation p points into (see seq.PaddedA and seq.PaddedB).
//
// Going through a *byte view keeps the loads legal on strict-alignment
// targets; amd64 and arm64 fuse them into a single unaligned load.

func Load8(p unsafe.Pointer, off int) uint8 {
	return *(*uint8)(unsafe.Add(p, off))
}

func Load16(p unsafe.Pointer, off int) uint16 {
	return binary.NativeEndian.Uint16(unsafe.Slice((*byte)(unsafe.Add(p, off)), 2))
}

func Load32(p unsafe.Pointer, off int) uint32 {
	return binary.NativeEndian.Uint32(unsafe.Slice((*byte)(unsafe.Add(p, off)), 4))
}

func Load64(p unsafe.Pointer, off int) uint64 {
	return binary.NativeEndian.Uint64(unsafe.Slice((*byte)(unsafe.Add(p, off)), 8))
}

// Unsigned is the set of element types a lane can gather.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Load reads one element of type E at p+off in native byte order.
func Load[E Unsigned](p unsafe.Pointer, off int) E {
	var v E
	switch unsafe.Sizeof(v) {
	case 1:
		return E(Load8(p, off))
	case 2:
		return E(Load16(p, off))
	case 4:
		return E(Load32(p, off))
	}
	return E(Load64(p, off))
}

// Word64 is the bounds-checked counterpart of Load64 used by the checked
// kernels. It panics if b has fewer than off+8 bytes.
func Word64(b []byte, off int) uint64 {
	return binary.NativeEndian.Uint64(b[off:])
}
