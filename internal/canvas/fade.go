package canvas

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const fadeEpsilon = 0.005

// fade eases a displayed opacity towards its target with a critically damped
// spring.
type fade struct {
	pos    float64
	vel    float64
	target float64
}

func newFade(opacity float64) fade {
	return fade{pos: opacity, target: opacity}
}

func (f *fade) step(s harmonica.Spring) {
	if f.settled() {
		return
	}
	f.pos, f.vel = s.Update(f.pos, f.vel, f.target)
	if math.Abs(f.pos-f.target) < fadeEpsilon && math.Abs(f.vel) < fadeEpsilon {
		f.pos, f.vel = f.target, 0
	}
}

func (f *fade) settled() bool {
	return f.pos == f.target && f.vel == 0
}

func (f *fade) value() float64 {
	return clamp01(f.pos)
}

func newFadeSpring(fps int) harmonica.Spring {
	if fps < 1 {
		fps = 60
	}
	return harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)
}
