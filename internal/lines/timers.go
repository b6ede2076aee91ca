package lines

import (
	"container/heap"
	"time"
)

// timer is a callback due at a point on the animator clock.
type timer struct {
	due    time.Duration
	seq    uint64
	period time.Duration // zero for one-shot timers
	fn     func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// scheduler runs callbacks against a virtual clock that only moves when the
// animator ticks, so hidden time never reaches it.
type scheduler struct {
	now  time.Duration
	seq  uint64
	heap timerHeap
}

func (s *scheduler) after(d time.Duration, fn func()) {
	s.push(&timer{due: s.now + d, fn: fn})
}

func (s *scheduler) every(d time.Duration, fn func()) {
	s.push(&timer{due: s.now + d, period: d, fn: fn})
}

func (s *scheduler) push(t *timer) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.heap, t)
}

// advance moves the clock by d and fires everything that came due, in due
// order. Callbacks may schedule further timers; those fire in the same call
// when they are already due.
func (s *scheduler) advance(d time.Duration) {
	s.now += d
	for s.heap.Len() > 0 && s.heap[0].due <= s.now {
		t := heap.Pop(&s.heap).(*timer)
		if t.period > 0 {
			t.due += t.period
			s.push(t)
		}
		t.fn()
	}
}

func (s *scheduler) pending() int { return s.heap.Len() }

func (s *scheduler) reset() {
	s.heap = nil
}
