package lines

// tryMerge lets l absorb the first other unmerged line whose head lies within
// MergeDistance, if the merge gate passes for it. The absorbed line stops
// growing; its segments keep animating out.
func (a *Animator) tryMerge(l *Line) {
	if l.Merged {
		return
	}
	for _, other := range a.lines {
		if other == l || other.Merged {
			continue
		}
		if l.Head.Dist(other.Head) >= a.params.MergeDistance {
			continue
		}
		if a.rng.Float64() >= a.params.MergeProbability {
			continue
		}

		l.Head = other.Head
		l.Direction = other.Direction
		other.Merged = true
		other.Completed = true
		a.merges++
		a.mark(l.Head, l.Color)

		a.logger.Debug("merged lines", "into", l.ID, "absorbed", other.ID)
		return
	}
}

// mark shows a short-lived dot at a merge junction.
func (a *Animator) mark(at Point, c Color) {
	r := a.params.MarkerSize / 2
	e := Element{
		ID:      a.newID(),
		Kind:    KindMarker,
		Bounds:  Rect{X: at.X - r, Y: at.Y - r, W: a.params.MarkerSize, H: a.params.MarkerSize},
		Color:   c,
		Opacity: 1,
	}
	a.surface.Attach(e)
	a.markers[e.ID] = struct{}{}

	a.timers.after(a.params.MarkerDelay, func() {
		e.Opacity = 0
		a.surface.Update(e)
		a.timers.after(a.params.MarkerFade, func() {
			delete(a.markers, e.ID)
			a.surface.Detach(e.ID)
		})
	})
}
