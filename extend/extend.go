// Package extend computes the length of the longest common prefix of two
// byte sequences, the "extend" step that dominates pairwise alignment.
//
// Every kernel in this package returns the same count for the same input;
// they differ only in speed and in how much they trust the caller:
//
//   - Checked kernels take []byte, never read past either slice and return
//     at most min(len(a), len(b)).
//   - Unchecked kernels take a seq.PaddedA and a seq.PaddedB and do not
//     test bounds at all. They keep scanning until a mismatch and may read
//     up to seq.Padding bytes past the end. Since the two padding fills
//     differ, equal-length inputs stop at the logical end and every input
//     stops within seq.Padding bytes of it, except when the longer side
//     repeats the shorter side's fill byte past the shorter end.
//
// None of the kernels allocate or return errors; a mismatch is the normal
// outcome. Which kernel is fastest depends on the CPU and the expected
// match length, so the package does not pick a default: Variants lists
// them all for benchmarks to choose from.
package extend

import "github.com/mhr3/extend/seq"

// Func is the uniform signature shared by every kernel, checked ones
// included (see Checked).
type Func func(a seq.PaddedA, b seq.PaddedB) int

// Class is the safety class of a kernel.
type Class uint8

const (
	// CheckedElement kernels compare one byte at a time within bounds.
	CheckedElement Class = iota
	// CheckedWord kernels compare 8-byte words within bounds and finish the
	// tail byte by byte.
	CheckedWord
	// Unchecked kernels rely on the seq padding and test no bounds.
	Unchecked
)

func (c Class) String() string {
	switch c {
	case CheckedElement:
		return "checked-element"
	case CheckedWord:
		return "checked-word"
	case Unchecked:
		return "unchecked"
	}
	return "unknown"
}

// Checked adapts a bounds-checked kernel to Func.
func Checked(f func(a, b []byte) int) Func {
	return func(a seq.PaddedA, b seq.PaddedB) int {
		return f(a.Bytes(), b.Bytes())
	}
}

// Variant names one kernel.
type Variant struct {
	Name  string
	Class Class
	Fn    Func
}

var variants = []Variant{
	{"zip", CheckedElement, Checked(Zip)},
	{"naive", CheckedElement, Checked(Naive)},
	{"naive_fast", CheckedElement, Checked(NaiveFast)},
	{"scalar", CheckedElement, Checked(Scalar)},
	{"scalar_fast", CheckedElement, Checked(ScalarFast)},
	{"u64", CheckedWord, Checked(U64)},

	{"naive_unchecked", Unchecked, NaiveUnchecked},
	{"scalar_unchecked", Unchecked, ScalarUnchecked},
	{"u64_xor", Unchecked, U64Unchecked},
	{"u64_eq", Unchecked, U64UncheckedEq},
	{"u64_eq_if0", Unchecked, U64UncheckedEqIf0},
	{"u64_eq_if1", Unchecked, U64UncheckedEqIf1},
	{"s64_xor", Unchecked, S64Unchecked},
	{"s64_eq", Unchecked, S64UncheckedEq},
	{"s64_nz", Unchecked, S64UncheckedNZ},
	{"s128_xor", Unchecked, S128Unchecked},
	{"s128_eq", Unchecked, S128UncheckedEq},
	{"s128_nz", Unchecked, S128UncheckedNZ},
	{"s256_xor", Unchecked, S256Unchecked},
	{"s256_eq", Unchecked, S256UncheckedEq},
	{"s256_nz", Unchecked, S256UncheckedNZ},
	{"hybrid", Unchecked, Hybrid},
}

// Variants returns every kernel, checked ones first.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the kernel registered under name.
func Lookup(name string) (Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
