package batch

import (
	"math"

	"github.com/eapache/queue"

	"github.com/mhr3/extend/seq"
)

const (
	lanes8    = 8
	elemBytes = 4
)

// Probe is one extend request: the common prefix of a[I:] and b[J:].
type Probe struct {
	I, J int
}

// Extender drives U32Once to completion over an arbitrary number of probes.
// Lanes that match a whole element advance and are probed again; finished
// lanes are refilled from a FIFO of pending probes, so all 8 lanes stay busy
// until the queue drains.
//
// Unlike the probe itself, Extender is checked: each result is clamped to
// min(a.Len()-I, b.Len()-J) and probes outside either sequence yield 0.
//
// The queue holds pointers into a reused index slice, so queuing a probe
// never boxes an int. Extend allocates only when the index slice or the
// queue's ring buffer has to grow; the queue shrinks its buffer again as it
// drains, so calls with more than 16 pending probes may allocate each time.
// An Extender is not safe for concurrent use.
type Extender struct {
	pending *queue.Queue
	index   []int
}

// NewExtender returns an Extender with an empty queue.
func NewExtender() *Extender {
	return &Extender{pending: queue.New()}
}

type lane struct {
	probe int // index into probes, -1 when idle
	cnt   int
	limit int
}

// Extend writes the match length of probes[n] to out[n]. It panics if
// len(out) != len(probes) or if either sequence is too long for 32-bit
// lane offsets.
func (e *Extender) Extend(a seq.PaddedA, b seq.PaddedB, probes []Probe, out []int) {
	if len(out) != len(probes) {
		panic("batch: len(out) != len(probes)")
	}
	if a.Len() > math.MaxInt32-seq.Padding || b.Len() > math.MaxInt32-seq.Padding {
		panic("batch: sequence too long for 32-bit lane offsets")
	}

	if cap(e.index) < len(probes) {
		e.index = make([]int, len(probes))
	}
	index := e.index[:len(probes)]
	for n, p := range probes {
		if p.I < 0 || p.J < 0 || p.I >= a.Len() || p.J >= b.Len() {
			out[n] = 0
			continue
		}
		index[n] = n
		e.pending.Add(&index[n])
	}

	var (
		state  [lanes8]lane
		is, js [lanes8]int32
		active int
	)
	for k := range state {
		state[k].probe = -1
		if e.fill(&state[k], &is[k], &js[k], a, b, probes) {
			active++
		}
	}

	for active > 0 {
		res := U32Once(a, b, is, js)
		for k := range state {
			st := &state[k]
			if st.probe < 0 {
				continue
			}
			r := int(res[k])
			st.cnt += r
			if r == elemBytes && st.cnt < st.limit {
				is[k] += elemBytes
				js[k] += elemBytes
				continue
			}
			out[st.probe] = min(st.cnt, st.limit)
			st.probe = -1
			if !e.fill(st, &is[k], &js[k], a, b, probes) {
				active--
			}
		}
	}
}

// fill loads the next pending probe into an idle lane. Idle lanes point at
// offset 0, which is always readable.
func (e *Extender) fill(st *lane, i, j *int32, a seq.PaddedA, b seq.PaddedB, probes []Probe) bool {
	if e.pending.Length() == 0 {
		*i, *j = 0, 0
		return false
	}
	n := *e.pending.Remove().(*int)
	p := probes[n]
	*st = lane{
		probe: n,
		limit: min(a.Len()-p.I, b.Len()-p.J),
	}
	*i, *j = int32(p.I), int32(p.J)
	return true
}
