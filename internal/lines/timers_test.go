package lines

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	var s scheduler
	var got []string
	s.after(30*time.Millisecond, func() { got = append(got, "c") })
	s.after(10*time.Millisecond, func() { got = append(got, "a") })
	s.after(10*time.Millisecond, func() { got = append(got, "b") })

	s.advance(5 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("expected nothing due yet, got %v", got)
	}
	s.advance(25 * time.Millisecond)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	if s.pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", s.pending())
	}
}

func TestSchedulerRepeatsPeriodicTimers(t *testing.T) {
	var s scheduler
	n := 0
	s.every(10*time.Millisecond, func() { n++ })

	for range 10 {
		s.advance(5 * time.Millisecond)
	}
	if n != 5 {
		t.Fatalf("expected 5 firings in 50ms, got %d", n)
	}
	if s.pending() != 1 {
		t.Fatalf("expected periodic timer to stay armed, got %d pending", s.pending())
	}
}

func TestSchedulerChainsDueCallbacks(t *testing.T) {
	var s scheduler
	var got []string
	s.after(10*time.Millisecond, func() {
		got = append(got, "first")
		s.after(0, func() { got = append(got, "second") })
	})

	s.advance(10 * time.Millisecond)
	if want := []string{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
}

func TestSchedulerResetDropsTimers(t *testing.T) {
	var s scheduler
	fired := false
	s.after(time.Millisecond, func() { fired = true })
	s.reset()
	s.advance(time.Second)
	if fired {
		t.Fatal("expected reset timer not to fire")
	}
}
