package lines

import "math"

// Segment is one straight stroke of a line, growing from Start towards End.
type Segment struct {
	ID        ElementID
	Start     Point
	End       Point
	Direction Direction
	// Length is the drawn length; Duration is derived from it even when the
	// boundary clamp shortened Target.
	Length   float64
	Target   float64
	Progress float64
	Duration float64
	Opacity  float64
}

// Done reports whether the segment has finished growing.
func (s *Segment) Done() bool {
	return s.Progress >= s.Duration
}

// Fraction is the grown share of the segment in [0, 1].
func (s *Segment) Fraction() float64 {
	if s.Duration <= 0 {
		return 1
	}
	return math.Min(1, s.Progress/s.Duration)
}

// Extent is the currently rendered length.
func (s *Segment) Extent() float64 {
	return s.Target * s.Fraction()
}

// Bounds returns the rendered box of the segment for a stroke of width w.
func (s *Segment) Bounds(w float64) Rect {
	ext := s.Extent()
	switch s.Direction {
	case Left:
		return Rect{X: s.Start.X - ext, Y: s.Start.Y, W: ext, H: w}
	case Up:
		return Rect{X: s.Start.X, Y: s.Start.Y - ext, W: w, H: ext}
	case Down:
		return Rect{X: s.Start.X, Y: s.Start.Y, W: w, H: ext}
	default:
		return Rect{X: s.Start.X, Y: s.Start.Y, W: ext, H: w}
	}
}

// advance grows the segment by one tick and reports whether it changed.
func (s *Segment) advance() bool {
	if s.Done() {
		return false
	}
	s.Progress++
	return true
}

// Line is a growing polyline. It owns its segments and is only mutated by the
// Animator that created it.
type Line struct {
	ID        ElementID
	Side      Side
	Origin    Point
	Head      Point
	Direction Direction
	Color     Color
	Opacity   float64
	Speed     float64

	MaxSegments     int
	SegmentsCreated int
	Segments        []*Segment

	Completed bool
	Merged    bool
	// Fading is set once teardown has been scheduled.
	Fading bool
}

// Last returns the most recent segment, or nil.
func (l *Line) Last() *Segment {
	if len(l.Segments) == 0 {
		return nil
	}
	return l.Segments[len(l.Segments)-1]
}

// Settled reports whether every segment has finished growing.
func (l *Line) Settled() bool {
	for _, s := range l.Segments {
		if !s.Done() {
			return false
		}
	}
	return true
}

func (l *Line) element() Element {
	return Element{
		ID:      l.ID,
		Kind:    KindLine,
		Bounds:  Rect{X: l.Origin.X, Y: l.Origin.Y},
		Color:   l.Color,
		Opacity: l.Opacity,
	}
}
