package lines

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Animator owns the active-line set and drives it one frame at a time.
// It is not safe for concurrent use; bubbletea's Update loop is its only caller.
type Animator struct {
	surface Surface
	params  Params
	rng     Rand
	logger  *log.Logger

	lines   []*Line
	markers map[ElementID]struct{}
	timers  scheduler
	nextID  ElementID
	running bool
	visible bool

	spawned int
	merges  int
	removed int
}

// Option configures an Animator.
type Option func(*Animator)

// WithParams replaces DefaultParams.
func WithParams(p Params) Option {
	return func(a *Animator) { a.params = p }
}

// WithRand injects the random source.
func WithRand(r Rand) Option {
	return func(a *Animator) { a.rng = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Animator) { a.logger = l }
}

// New creates a stopped animator drawing on s.
func New(s Surface, opts ...Option) *Animator {
	a := &Animator{
		surface: s,
		params:  DefaultParams(),
		markers: make(map[ElementID]struct{}),
		visible: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = NewRand(time.Now().UnixNano())
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	return a
}

// Params returns the parameters in use.
func (a *Animator) Params() Params { return a.params }

// Start resets the population, seeds the initial lines and arms the spawn
// timer. Seeding never exceeds Capacity.
func (a *Animator) Start() error {
	a.Stop()
	if _, err := a.size(); err != nil {
		return err
	}

	a.running = true
	n := min(a.params.InitialLines, a.params.Capacity)
	for range n {
		if _, err := a.Spawn(); err != nil {
			return err
		}
	}
	a.timers.every(a.params.SpawnInterval, a.spawnGate)
	a.logger.Debug("animation started", "lines", len(a.lines), "capacity", a.params.Capacity)
	return nil
}

// Stop cancels pending timers and releases every visual.
func (a *Animator) Stop() {
	a.timers.reset()
	for _, l := range a.lines {
		a.release(l)
	}
	for id := range a.markers {
		if a.surface != nil {
			a.surface.Detach(id)
		}
		delete(a.markers, id)
	}
	a.lines = nil
	a.running = false
}

// Restart is Stop followed by Start.
func (a *Animator) Restart() error {
	return a.Start()
}

// Running reports whether Start succeeded and Stop has not been called since.
func (a *Animator) Running() bool { return a.running }

// SetVisible pauses (false) or resumes (true) the animation. While hidden,
// ticks are dropped entirely; nothing catches up on resume.
func (a *Animator) SetVisible(v bool) {
	if a.visible == v {
		return
	}
	a.visible = v
	a.logger.Debug("visibility changed", "visible", v)
}

// Visible reports the current visibility.
func (a *Animator) Visible() bool { return a.visible }

// Lines returns the active set in creation order. The slice must not be
// modified by the caller.
func (a *Animator) Lines() []*Line { return a.lines }

// Stats summarizes the animation state.
type Stats struct {
	Active   int
	Capacity int
	Segments int
	Spawned  int
	Merges   int
	Removed  int
	Elapsed  time.Duration
}

// Stats returns counters for status displays.
func (a *Animator) Stats() Stats {
	st := Stats{
		Active:   len(a.lines),
		Capacity: a.params.Capacity,
		Spawned:  a.spawned,
		Merges:   a.merges,
		Removed:  a.removed,
		Elapsed:  a.timers.now,
	}
	for _, l := range a.lines {
		st.Segments += len(l.Segments)
	}
	return st
}

func (a *Animator) size() (Size, error) {
	if a.surface == nil {
		a.logger.Warn("cannot draw background", "err", ErrHostMissing)
		return Size{}, ErrHostMissing
	}
	sz, err := a.surface.Size()
	if err != nil {
		a.logger.Warn("cannot draw background", "err", err)
		return Size{}, err
	}
	return sz, nil
}

func (a *Animator) newID() ElementID {
	a.nextID++
	return a.nextID
}

func (a *Animator) spawnGate() {
	if len(a.lines) < a.params.Capacity && a.rng.Float64() < a.params.SpawnProbability {
		if _, err := a.Spawn(); err != nil {
			a.logger.Debug("spawn skipped", "err", err)
		}
	}
}
