package lines

import "slices"

// Tick advances the animation by one frame. It does nothing while stopped or
// hidden, and returns ErrHostMissing without touching any state when the
// background layer is gone.
func (a *Animator) Tick() error {
	if !a.running || !a.visible {
		return nil
	}
	sz, err := a.size()
	if err != nil {
		return err
	}

	a.timers.advance(a.params.FrameInterval)

	// Newest first.
	for i := len(a.lines) - 1; i >= 0; i-- {
		a.step(a.lines[i], sz)
	}
	return nil
}

func (a *Animator) step(l *Line, sz Size) {
	if len(l.Segments) == 0 {
		return
	}

	if !l.Completed && !l.Merged && l.Last().Done() {
		a.growNextSegment(l, sz)
	}

	for _, s := range l.Segments {
		if s.advance() {
			a.surface.Update(a.segmentElement(l, s))
		}
	}

	if l.Completed && !l.Fading && l.Settled() {
		l.Fading = true
		a.scheduleTeardown(l)
	}
}

// scheduleTeardown fades l after TeardownDelay and removes it FadeDuration
// later. The callbacks tolerate a line that was already released.
func (a *Animator) scheduleTeardown(l *Line) {
	a.timers.after(a.params.TeardownDelay, func() {
		for _, s := range l.Segments {
			s.Opacity = 0
			a.surface.Update(a.segmentElement(l, s))
		}
		a.timers.after(a.params.FadeDuration, func() {
			a.remove(l)
		})
	})
}

// remove releases l and drops it from the active set. Removing a line twice
// is a no-op.
func (a *Animator) remove(l *Line) {
	i := slices.Index(a.lines, l)
	if i < 0 {
		return
	}
	a.release(l)
	a.lines = slices.Delete(a.lines, i, i+1)
	a.removed++
	a.logger.Debug("removed line", "id", l.ID, "segments", len(l.Segments), "merged", l.Merged)
}

func (a *Animator) release(l *Line) {
	if a.surface == nil {
		return
	}
	for _, s := range l.Segments {
		a.surface.Detach(s.ID)
	}
	a.surface.Detach(l.ID)
}
