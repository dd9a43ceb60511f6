package vec

import (
	"errors"
	"slices"
)

// errRefused is returned by hook operations told to fail.
var errRefused = errors.New("element operation refused")

// probe is an element whose lifetime operations are counted and can be made
// to fail on demand. One hooks value is shared by every probe in a test so
// the counters cover the whole container.
type probe struct {
	val   int
	moved bool
}

type hooks struct {
	defaults int
	copies   int
	moves    int
	destroys int

	// destroys of values that were never moved out
	destroyedLive int

	// 1-based call number at which the operation fails; 0 disables
	failDefaultAt int
	failCopyAt    int
	failMoveAt    int
}

// ops returns a probe policy wired to h. noFailMove selects the relocation
// strategy: true moves during growth, false (with Copy present) copies.
func (h *hooks) ops(noFailMove bool) Ops[probe] {
	return Ops[probe]{
		Default: func() (probe, error) {
			h.defaults++
			if h.failDefaultAt != 0 && h.defaults == h.failDefaultAt {
				return probe{}, errRefused
			}
			return probe{}, nil
		},
		Copy: func(p probe) (probe, error) {
			h.copies++
			if h.failCopyAt != 0 && h.copies == h.failCopyAt {
				return probe{}, errRefused
			}
			return probe{val: p.val}, nil
		},
		Move: func(src *probe) (probe, error) {
			h.moves++
			if h.failMoveAt != 0 && h.moves == h.failMoveAt {
				return probe{}, errRefused
			}
			p := probe{val: src.val}
			src.moved = true
			return p, nil
		},
		NoFailMove: noFailMove,
		Destroy: func(p *probe) {
			h.destroys++
			if !p.moved {
				h.destroyedLive++
			}
		},
	}
}

// probeVector builds a vector of probes with the given values, reserving
// capacity up front so construction itself causes no relocations.
func probeVector(h *hooks, noFailMove bool, capacity int, vals ...int) *Vector[probe] {
	v := New(h.ops(noFailMove))
	if err := v.Reserve(capacity); err != nil {
		panic(err)
	}
	for _, x := range vals {
		if err := v.PushBack(probe{val: x}); err != nil {
			panic(err)
		}
	}
	return v
}

func probeValues(v *Vector[probe]) []int {
	out := make([]int, 0, v.Len())
	for p := range v.Values() {
		out = append(out, p.val)
	}
	return out
}

func intValues(v *Vector[int]) []int {
	return slices.Collect(v.Values())
}
