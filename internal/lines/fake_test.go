package lines

import (
	"math/rand"
	"time"
)

type fakeSurface struct {
	size     Size
	unmount  bool
	attached map[ElementID]Element
	history  map[ElementID][]Element
	detaches int
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{
		size:     Size{W: w, H: h},
		attached: make(map[ElementID]Element),
		history:  make(map[ElementID][]Element),
	}
}

func (f *fakeSurface) Size() (Size, error) {
	if f.unmount {
		return Size{}, ErrHostMissing
	}
	return f.size, nil
}

func (f *fakeSurface) Attach(e Element) {
	f.attached[e.ID] = e
	f.history[e.ID] = append(f.history[e.ID], e)
}

func (f *fakeSurface) Update(e Element) {
	if _, ok := f.attached[e.ID]; !ok {
		return
	}
	f.attached[e.ID] = e
	f.history[e.ID] = append(f.history[e.ID], e)
}

func (f *fakeSurface) Detach(id ElementID) bool {
	if _, ok := f.attached[id]; !ok {
		return false
	}
	delete(f.attached, id)
	f.detaches++
	return true
}

func (f *fakeSurface) count(k ElementKind) int {
	n := 0
	for _, e := range f.attached {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// scriptedRand hands out queued values first and falls back to a seeded
// source once the script runs dry.
type scriptedRand struct {
	floats   []float64
	ints     []int
	fallback *rand.Rand
}

func newScriptedRand(floats ...float64) *scriptedRand {
	return &scriptedRand{floats: floats, fallback: rand.New(rand.NewSource(7))}
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.fallback.Float64()
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return r.fallback.Intn(n)
}

// testParams uses a round frame interval so tick counts are exact.
func testParams() Params {
	p := DefaultParams()
	p.FrameInterval = 10 * time.Millisecond
	return p
}
