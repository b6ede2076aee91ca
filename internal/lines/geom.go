package lines

import "math"

// Point is a position in viewport units. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// Add returns p moved by length along d.
func (p Point) Add(d Direction, length float64) Point {
	dx, dy := d.Vector()
	return Point{X: p.X + dx*length, Y: p.Y + dy*length}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is the extent of the background layer in viewport units.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Side is the viewport edge a line enters from.
type Side uint8

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// Direction returns the heading a line takes when entering from s.
func (s Side) Direction() Direction {
	switch s {
	case SideTop:
		return Down
	case SideRight:
		return Left
	case SideBottom:
		return Up
	default:
		return Right
	}
}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	default:
		return "left"
	}
}

// Direction is the heading of a segment.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Vector returns the unit step for d.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 1, 0
	}
}

// Horizontal reports whether d runs along the x axis.
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "right"
	}
}

// Color is a semantic palette slot. The surface resolves it through its theme.
type Color uint8

const (
	Primary Color = iota
	Secondary
	Tertiary
	Quaternary
)

// NumColors is the size of the palette lines pick from.
const NumColors = 4
