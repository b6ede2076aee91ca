package lines

import (
	"errors"
	"math/rand"
)

// ErrHostMissing is returned when the background layer has not been mounted yet.
var ErrHostMissing = errors.New("background layer not mounted")

// ElementID identifies a visual on the surface.
type ElementID uint64

// ElementKind tells the surface how to draw an element.
type ElementKind uint8

const (
	// KindLine is the root visual of a line. It has no extent of its own.
	KindLine ElementKind = iota
	KindSegment
	KindMarker
)

func (k ElementKind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindMarker:
		return "marker"
	default:
		return "line"
	}
}

// Element is the drawable state of a line root, segment or merge marker.
type Element struct {
	ID      ElementID
	Kind    ElementKind
	Bounds  Rect
	Color   Color
	Opacity float64
}

// Surface is the background layer the animator draws on. All calls happen on
// the animator's goroutine.
type Surface interface {
	// Size returns the current layer extent, or ErrHostMissing.
	Size() (Size, error)
	// Attach adds a new visual.
	Attach(e Element)
	// Update changes an attached visual. Unknown IDs are ignored.
	Update(e Element)
	// Detach removes a visual and reports whether it was attached.
	Detach(id ElementID) bool
}

// Rand is the random source behind every animation decision.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
