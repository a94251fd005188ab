package batch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/extend/extend"
	"github.com/mhr3/extend/internal/seqgen"
	"github.com/mhr3/extend/seq"
)

// Assignments fail to compile if a lane function drifts from the uniform type.
var (
	_ Func[[8]int32]  = U32Once
	_ Func[[16]int32] = U16Once
	_ Func[[32]int32] = U8Once
)

// leading returns how many of the first w bytes of a[i:] and b[j:] agree.
func leading(a, b []byte, i, j, w int) int32 {
	n := 0
	for n < w && a[i+n] == b[j+n] {
		n++
	}
	return int32(n)
}

func TestU32OnceScenario(t *testing.T) {
	a := []byte("ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT")
	b := []byte("ACGTTCGTAGGTACTTACGAACGTACGTACGTTTTTACGT")
	pa, pb := seq.PadPair(a, b)

	var is, js [8]int32
	for k := range is {
		is[k] = int32(4 * k)
		js[k] = int32(4 * k)
	}
	got := U32Once(pa, pb, is, js)
	assert.Equal(t, [8]int32{4, 0, 1, 2, 3, 4, 4, 4}, got)

	// every lane pointing at a mismatching window reports a value in [0, 4)
	for k := range js {
		js[k] = int32(k%4 + 32)
	}
	got = U32Once(pa, pb, is, js)
	for k, r := range got {
		assert.GreaterOrEqual(t, r, int32(0), "lane %d", k)
		assert.Less(t, r, int32(4), "lane %d", k)
		assert.Equal(t, leading(a, b, int(is[k]), int(js[k]), 4), r, "lane %d", k)
	}
}

func TestOnceMismatchPositions(t *testing.T) {
	g := seqgen.New(5)
	a := g.Random(256)

	for p := 0; p <= 4; p++ {
		b := append([]byte(nil), a...)
		var is, js [8]int32
		for k := range is {
			off := 24 * k
			is[k], js[k] = int32(off), int32(off)
			if p < 4 {
				b[off+p] = seqOther(b[off+p])
			}
		}
		pa, pb := seq.PadPair(a, b)
		got := U32Once(pa, pb, is, js)
		for k := range got {
			assert.Equal(t, int32(p), got[k], "p=%d lane %d", p, k)
		}
	}
}

func TestU16AndU8Once(t *testing.T) {
	g := seqgen.New(6)
	a, b := g.Uniform(512, 0.3)
	pa, pb := seq.PadPair(a, b)
	n := min(len(a), len(b))

	var is16, js16 [16]int32
	for k := range is16 {
		is16[k] = int32((k * 29) % (n - 2))
		js16[k] = int32((k * 31) % (n - 2))
	}
	got16 := U16Once(pa, pb, is16, js16)
	for k := range got16 {
		assert.Equal(t, leading(a, b, int(is16[k]), int(js16[k]), 2), got16[k], "lane %d", k)
	}

	var is8, js8 [32]int32
	for k := range is8 {
		is8[k] = int32(k * 7)
		js8[k] = int32(k*7 + k%3)
	}
	got8 := U8Once(pa, pb, is8, js8)
	for k := range got8 {
		assert.Equal(t, leading(a, b, int(is8[k]), int(js8[k]), 1), got8[k], "lane %d", k)
	}
}

func TestOnceAtEnd(t *testing.T) {
	// offsets equal to Len read only padding, which differs between a and b
	a, b := seq.PadPair([]byte("ACGT"), []byte("ACGT"))
	var is, js [8]int32
	for k := range is {
		is[k], js[k] = 4, 4
	}
	assert.Equal(t, [8]int32{}, U32Once(a, b, is, js))
}

func TestExtender(t *testing.T) {
	e := NewExtender()
	for _, rate := range []float64{0, 0.01, 0.1, 0.5} {
		g := seqgen.New(uint32(rate*1000) + 1)
		a, b := g.Uniform(700, rate)
		pa, pb := seq.PadPair(a, b)

		probes := make([]Probe, 100)
		for n := range probes {
			probes[n] = Probe{I: n * 7 % len(a), J: n * 7 % len(b)}
		}
		probes = append(probes,
			Probe{I: -1, J: 0},
			Probe{I: 0, J: len(b)},
			Probe{I: len(a) - 1, J: len(b) - 1},
			Probe{I: 0, J: 0},
		)

		out := make([]int, len(probes))
		e.Extend(pa, pb, probes, out)
		for n, p := range probes {
			want := 0
			if p.I >= 0 && p.J >= 0 && p.I < len(a) && p.J < len(b) {
				want = extend.Zip(a[p.I:], b[p.J:])
			}
			require.Equal(t, want, out[n], "rate=%v probe %d %+v", rate, n, p)
		}
		assert.Zero(t, e.pending.Length())
	}
}

func TestExtenderShortBatch(t *testing.T) {
	a, b := seq.PadPair([]byte("ACGTACGTAC"), []byte("ACGTACGTAC"))
	e := NewExtender()

	out := make([]int, 2)
	e.Extend(a, b, []Probe{{0, 0}, {3, 3}}, out)
	assert.Equal(t, []int{10, 7}, out)

	e.Extend(a, b, nil, nil)
	assert.Panics(t, func() { e.Extend(a, b, []Probe{{0, 0}}, nil) })
}

// Only the tail of the request list is in range, so every queued index is
// above 255, where converting an int to an interface would allocate.
func TestExtenderHighIndicesNoAlloc(t *testing.T) {
	a, b := seqgen.Uniform(400, 0.1, 4)
	pa, pb := seq.PadPair(a, b)

	probes := make([]Probe, 300)
	for n := range probes {
		probes[n] = Probe{I: -1, J: -1}
	}
	for n := 290; n < len(probes); n++ {
		probes[n] = Probe{I: n - 290, J: n - 290}
	}
	out := make([]int, len(probes))

	e := NewExtender()
	e.Extend(pa, pb, probes, out)
	for n, p := range probes {
		want := 0
		if p.I >= 0 {
			want = extend.Zip(a[p.I:], b[p.J:])
		}
		require.Equal(t, want, out[n], "request %d", n)
	}

	allocs := testing.AllocsPerRun(100, func() {
		e.Extend(pa, pb, probes, out)
	})
	assert.Zero(t, allocs)
}

func seqOther(c byte) byte {
	if c == 'A' {
		return 'C'
	}
	return 'A'
}

func BenchmarkExtender(b *testing.B) {
	for _, rate := range []float64{0.1, 0.01, 0.002} {
		x, y := seqgen.Uniform(3000, rate, 1)
		pa, pb := seq.PadPair(x, y)
		probes := make([]Probe, 256)
		for n := range probes {
			probes[n] = Probe{I: n * 11 % len(x), J: n * 11 % len(y)}
		}
		out := make([]int, len(probes))

		b.Run(fmt.Sprintf("lanes-%.3f", rate), func(b *testing.B) {
			e := NewExtender()
			for i := 0; i < b.N; i++ {
				e.Extend(pa, pb, probes, out)
			}
		})

		b.Run(fmt.Sprintf("scalar-%.3f", rate), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for n, p := range probes {
					out[n] = extend.U64UncheckedEq(pa.Slice(p.I), pb.Slice(p.J))
				}
			}
		})
	}
}

func BenchmarkOnce(b *testing.B) {
	x, y := seqgen.Uniform(4096, 0.05, 2)
	pa, pb := seq.PadPair(x, y)

	b.Run("u32x8", func(b *testing.B) {
		var is, js [8]int32
		for k := range is {
			is[k], js[k] = int32(k*97), int32(k*97)
		}
		for i := 0; i < b.N; i++ {
			is = U32Once(pa, pb, is, js)
		}
	})
	b.Run("u16x16", func(b *testing.B) {
		var is, js [16]int32
		for k := range is {
			is[k], js[k] = int32(k*97), int32(k*97)
		}
		for i := 0; i < b.N; i++ {
			is = U16Once(pa, pb, is, js)
		}
	})
	b.Run("u8x32", func(b *testing.B) {
		var is, js [32]int32
		for k := range is {
			is[k], js[k] = int32(k*97), int32(k*97)
		}
		for i := 0; i < b.N; i++ {
			is = U8Once(pa, pb, is, js)
		}
	})
}
