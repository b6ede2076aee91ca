package lines

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Params holds the tunables of the animation. Lengths and distances are in
// viewport units, speeds in units per tick.
type Params struct {
	InitialLines     int
	Capacity         int
	SpawnInterval    time.Duration
	SpawnProbability float64

	SpeedMin    float64
	SpeedMax    float64
	MinSegments int
	MaxSegments int
	OpacityMin  float64
	OpacityMax  float64
	SegmentMin  float64
	SegmentMax  float64

	BoundaryMargin float64
	HorizontalTurn float64
	VerticalTurn   float64

	MergeDistance    float64
	MergeProbability float64

	TeardownDelay time.Duration
	FadeDuration  time.Duration
	MarkerDelay   time.Duration
	MarkerFade    time.Duration

	FrameInterval time.Duration
	StrokeWidth   float64
	MarkerSize    float64
}

// DefaultParams returns the stock look of the background.
func DefaultParams() Params {
	return Params{
		InitialLines:     40,
		Capacity:         60,
		SpawnInterval:    600 * time.Millisecond,
		SpawnProbability: 0.7,

		SpeedMin:    0.7,
		SpeedMax:    2.2,
		MinSegments: 10,
		MaxSegments: 16,
		OpacityMin:  0.3,
		OpacityMax:  0.6,
		SegmentMin:  100,
		SegmentMax:  350,

		BoundaryMargin: 500,
		HorizontalTurn: 0.2,
		VerticalTurn:   0.4,

		MergeDistance:    15,
		MergeProbability: 0.5,

		TeardownDelay: 3000 * time.Millisecond,
		FadeDuration:  500 * time.Millisecond,
		MarkerDelay:   1500 * time.Millisecond,
		MarkerFade:    500 * time.Millisecond,

		FrameInterval: time.Second / 60,
		StrokeWidth:   2,
		MarkerSize:    4,
	}
}

// Validate reports every inconsistent field at once.
func (p Params) Validate() error {
	var merr error
	fail := func(format string, args ...any) {
		merr = multierror.Append(merr, fmt.Errorf(format, args...))
	}

	if p.InitialLines < 0 {
		fail("initial lines must not be negative, got %d", p.InitialLines)
	}
	if p.Capacity < 0 {
		fail("capacity must not be negative, got %d", p.Capacity)
	}
	if p.SpawnInterval <= 0 {
		fail("spawn interval must be positive, got %s", p.SpawnInterval)
	}
	if p.SpeedMin <= 0 || p.SpeedMax < p.SpeedMin {
		fail("speed range must be positive and ordered, got [%g, %g]", p.SpeedMin, p.SpeedMax)
	}
	if p.MinSegments < 1 || p.MaxSegments < p.MinSegments {
		fail("segment budget must be at least 1 and ordered, got [%d, %d]", p.MinSegments, p.MaxSegments)
	}
	if p.OpacityMin < 0 || p.OpacityMax > 1 || p.OpacityMax < p.OpacityMin {
		fail("opacity range must lie in [0, 1] and be ordered, got [%g, %g]", p.OpacityMin, p.OpacityMax)
	}
	if p.SegmentMin <= 0 || p.SegmentMax < p.SegmentMin {
		fail("segment length range must be positive and ordered, got [%g, %g]", p.SegmentMin, p.SegmentMax)
	}
	if p.BoundaryMargin < 0 {
		fail("boundary margin must not be negative, got %g", p.BoundaryMargin)
	}
	if p.MergeDistance < 0 {
		fail("merge distance must not be negative, got %g", p.MergeDistance)
	}
	if 2*p.HorizontalTurn > 1 {
		fail("horizontal turn probability must be at most 0.5, got %g", p.HorizontalTurn)
	}

	probs := []struct {
		name string
		v    float64
	}{
		{"spawn probability", p.SpawnProbability},
		{"horizontal turn probability", p.HorizontalTurn},
		{"vertical turn probability", p.VerticalTurn},
		{"merge probability", p.MergeProbability},
	}
	for _, pr := range probs {
		if pr.v < 0 || pr.v > 1 {
			fail("%s must lie in [0, 1], got %g", pr.name, pr.v)
		}
	}

	durations := []struct {
		name string
		v    time.Duration
	}{
		{"teardown delay", p.TeardownDelay},
		{"fade duration", p.FadeDuration},
		{"marker delay", p.MarkerDelay},
		{"marker fade", p.MarkerFade},
	}
	for _, d := range durations {
		if d.v < 0 {
			fail("%s must not be negative, got %s", d.name, d.v)
		}
	}
	if p.FrameInterval <= 0 {
		fail("frame interval must be positive, got %s", p.FrameInterval)
	}
	if p.StrokeWidth <= 0 {
		fail("stroke width must be positive, got %g", p.StrokeWidth)
	}
	if p.MarkerSize < 0 {
		fail("marker size must not be negative, got %g", p.MarkerSize)
	}
	return merr
}

// Ticks converts d into a whole number of frames, rounding up.
func (p Params) Ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int(d / p.FrameInterval)
	if d%p.FrameInterval != 0 {
		n++
	}
	return n
}
