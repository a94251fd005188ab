// Package seqgen generates reproducible nucleotide sequence pairs for tests
// and benchmarks of the extend kernels.
package seqgen

import "github.com/valyala/fastrand"

// Alphabet is the set of bytes generated sequences are drawn from. It
// excludes seq.FillA and seq.FillB.
const Alphabet = "ACGT"

// Generator produces sequences from a seeded RNG. The same seed always
// yields the same sequence of outputs.
type Generator struct {
	rng fastrand.RNG
}

// zeroSeed replaces seed 0, which fastrand treats as "pick a random seed".
const zeroSeed = 0x9e3779b9

// New returns a Generator seeded with seed.
func New(seed uint32) *Generator {
	if seed == 0 {
		seed = zeroSeed
	}
	g := &Generator{}
	g.rng.Seed(seed)
	return g
}

// Random returns n bytes drawn uniformly from Alphabet.
func (g *Generator) Random(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = g.base()
	}
	return b
}

// Independent returns two unrelated random sequences of length n.
func (g *Generator) Independent(n int) (a, b []byte) {
	return g.Random(n), g.Random(n)
}

// Uniform returns a random sequence a of length n and a copy b with
// round(rate*n) random edits applied. Each edit is a substitution, an
// insertion or a deletion with equal probability. A rate of 1 yields an
// independent pair. Uniform panics if rate is outside [0, 1].
func (g *Generator) Uniform(n int, rate float64) (a, b []byte) {
	if rate < 0 || rate > 1 {
		panic("seqgen: rate must be within [0, 1]")
	}
	if rate == 1 {
		return g.Independent(n)
	}
	a = g.Random(n)
	b = make([]byte, n, n+n/8+1)
	copy(b, a)

	edits := int(rate*float64(n) + 0.5)
	for e := 0; e < edits; e++ {
		switch g.rng.Uint32n(3) {
		case 0:
			if len(b) == 0 {
				continue
			}
			i := g.rng.Uint32n(uint32(len(b)))
			b[i] = g.other(b[i])
		case 1:
			i := int(g.rng.Uint32n(uint32(len(b) + 1)))
			b = append(b, 0)
			copy(b[i+1:], b[i:])
			b[i] = g.base()
		case 2:
			if len(b) == 0 {
				continue
			}
			i := int(g.rng.Uint32n(uint32(len(b))))
			b = append(b[:i], b[i+1:]...)
		}
	}
	return a, b
}

// MismatchAt returns a random sequence of length n and a copy that differs
// only at position p. If p >= n the copy is identical.
func (g *Generator) MismatchAt(n, p int) (a, b []byte) {
	a = g.Random(n)
	b = append([]byte(nil), a...)
	if p < n {
		b[p] = g.other(b[p])
	}
	return a, b
}

func (g *Generator) base() byte {
	return Alphabet[g.rng.Uint32n(uint32(len(Alphabet)))]
}

// other returns a base different from c.
func (g *Generator) other(c byte) byte {
	for {
		if o := g.base(); o != c {
			return o
		}
	}
}

// Independent is New(seed).Independent(n).
func Independent(n int, seed uint32) (a, b []byte) {
	return New(seed).Independent(n)
}

// Uniform is New(seed).Uniform(n, rate).
func Uniform(n int, rate float64, seed uint32) (a, b []byte) {
	return New(seed).Uniform(n, rate)
}
