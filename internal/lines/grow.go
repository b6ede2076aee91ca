package lines

// growNextSegment appends the next segment to l, or marks l completed once
// its budget is spent.
func (a *Animator) growNextSegment(l *Line, sz Size) {
	if l.SegmentsCreated >= l.MaxSegments {
		l.Completed = true
		return
	}

	if l.SegmentsCreated > 0 {
		l.Direction = a.nextDirection(l.Direction)
	}

	length := uniform(a.rng, a.params.SegmentMin, a.params.SegmentMax)
	end := l.Head.Add(l.Direction, length)

	margin := a.params.BoundaryMargin
	switch {
	case end.X > sz.W+margin:
		end.X = sz.W + margin
		l.Completed = true
	case end.X < -margin:
		end.X = -margin
		l.Completed = true
	}
	switch {
	case end.Y > sz.H+margin:
		end.Y = sz.H + margin
		l.Completed = true
	case end.Y < -margin:
		end.Y = -margin
		l.Completed = true
	}

	seg := &Segment{
		ID:        a.newID(),
		Start:     l.Head,
		End:       end,
		Direction: l.Direction,
		Length:    length,
		Target:    l.Head.Dist(end),
		Duration:  length / l.Speed,
		Opacity:   l.Opacity,
	}
	a.surface.Attach(a.segmentElement(l, seg))

	l.Segments = append(l.Segments, seg)
	l.Head = end
	l.SegmentsCreated++

	a.tryMerge(l)
}

// nextDirection applies the turn policy: horizontal runs turn up or down with
// HorizontalTurn each, vertical runs turn left or right with VerticalTurn in
// total.
func (a *Animator) nextDirection(d Direction) Direction {
	r := a.rng.Float64()
	if d.Horizontal() {
		switch {
		case r < a.params.HorizontalTurn:
			return Up
		case r < 2*a.params.HorizontalTurn:
			return Down
		}
		return d
	}
	if r < a.params.VerticalTurn {
		if a.rng.Float64() < 0.5 {
			return Right
		}
		return Left
	}
	return d
}

func (a *Animator) segmentElement(l *Line, s *Segment) Element {
	return Element{
		ID:      s.ID,
		Kind:    KindSegment,
		Bounds:  s.Bounds(a.params.StrokeWidth),
		Color:   l.Color,
		Opacity: s.Opacity,
	}
}
