package lines

import "errors"

// ErrPopulationFull is returned by Spawn when the active set is at capacity.
var ErrPopulationFull = errors.New("active line population at capacity")

// Spawn creates one line on a random edge, attaches its root visual, adds it
// to the active set and grows its first segment.
func (a *Animator) Spawn() (*Line, error) {
	sz, err := a.size()
	if err != nil {
		return nil, err
	}
	if len(a.lines) >= a.params.Capacity {
		return nil, ErrPopulationFull
	}

	side := Side(a.rng.Intn(4))
	var start Point
	switch side {
	case SideLeft:
		start = Point{X: 0, Y: a.rng.Float64() * sz.H}
	case SideTop:
		start = Point{X: a.rng.Float64() * sz.W, Y: 0}
	case SideRight:
		start = Point{X: sz.W, Y: a.rng.Float64() * sz.H}
	case SideBottom:
		start = Point{X: a.rng.Float64() * sz.W, Y: sz.H}
	}

	p := a.params
	l := &Line{
		ID:          a.newID(),
		Side:        side,
		Origin:      start,
		Head:        start,
		Direction:   side.Direction(),
		Speed:       uniform(a.rng, p.SpeedMin, p.SpeedMax),
		MaxSegments: p.MinSegments + a.rng.Intn(p.MaxSegments-p.MinSegments+1),
		Color:       Color(a.rng.Intn(NumColors)),
		Opacity:     uniform(a.rng, p.OpacityMin, p.OpacityMax),
	}

	a.surface.Attach(l.element())
	a.lines = append(a.lines, l)
	a.spawned++
	a.growNextSegment(l, sz)

	a.logger.Debug("spawned line",
		"id", l.ID,
		"side", side,
		"segments", l.MaxSegments,
		"speed", l.Speed,
	)
	return l, nil
}
