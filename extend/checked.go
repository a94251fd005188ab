package extend

import "github.com/mhr3/extend/internal/bytealg"

// Zip is the reference kernel: a plain loop over the common range.
// Checked, element-wise.
func Zip(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Naive drops one byte from both slices per step and tests both lengths
// every time. Checked, element-wise.
func Naive(a, b []byte) int {
	cnt := 0
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		cnt++
		a, b = a[1:], b[1:]
	}
	return cnt
}

// NaiveFast is Naive with the bound computed once. Checked, element-wise.
func NaiveFast(a, b []byte) int {
	cnt := 0
	n := min(len(a), len(b))
	for cnt < n && a[0] == b[0] {
		cnt++
		a, b = a[1:], b[1:]
	}
	return cnt
}

// Scalar indexes both slices and tests both lengths each step. Checked,
// element-wise.
func Scalar(a, b []byte) int {
	cnt := 0
	for cnt < len(a) && cnt < len(b) && a[cnt] == b[cnt] {
		cnt++
	}
	return cnt
}

// ScalarFast is Scalar with the bound computed once. Checked,
// element-wise.
func ScalarFast(a, b []byte) int {
	cnt := 0
	n := min(len(a), len(b))
	for cnt < n && a[cnt] == b[cnt] {
		cnt++
	}
	return cnt
}

// U64 compares 8-byte words while both slices have at least 8 bytes left
// and finishes the residual tail with Zip. Checked, word-wise.
func U64(a, b []byte) int {
	cnt := 0
	for cnt+8 <= len(a) && cnt+8 <= len(b) {
		x := bytealg.Word64(a, cnt) ^ bytealg.Word64(b, cnt)
		if x != 0 {
			return cnt + bytealg.Native.First64(x)
		}
		cnt += 8
	}
	return cnt + Zip(a[cnt:], b[cnt:])
}
