package canvas

import (
	"maps"
	"slices"

	"github.com/charmbracelet/harmonica"
	"github.com/muesli/termenv"
	"github.com/olivier-w/flowlines/internal/lines"
)

// Viewport units covered by one terminal cell. Each cell holds a 2x4 braille
// dot grid, so a dot is 4x4 units.
const (
	CellWidth  = 8
	CellHeight = 16

	dotWidth  = CellWidth / 2
	dotHeight = CellHeight / 4
)

type item struct {
	el   lines.Element
	fade fade
}

// Canvas is a terminal background layer. It implements lines.Surface and
// renders attached elements as colored braille cells.
type Canvas struct {
	cols    int
	rows    int
	items   map[lines.ElementID]*item
	theme   Theme
	profile termenv.Profile
	spring  harmonica.Spring
	seqs    map[string]string
}

// New creates an unmounted canvas. fps is the rate Step is called at.
func New(theme Theme, profile termenv.Profile, fps int) *Canvas {
	return &Canvas{
		items:   make(map[lines.ElementID]*item),
		theme:   theme,
		profile: profile,
		spring:  newFadeSpring(fps),
		seqs:    make(map[string]string),
	}
}

// Resize mounts the layer at cols x rows terminal cells. A non-positive size
// unmounts it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
}

// Mounted reports whether the layer has a drawable size.
func (c *Canvas) Mounted() bool {
	return c.cols > 0 && c.rows > 0
}

// Dims returns the size in terminal cells.
func (c *Canvas) Dims() (cols, rows int) {
	return c.cols, c.rows
}

// Size implements lines.Surface.
func (c *Canvas) Size() (lines.Size, error) {
	if !c.Mounted() {
		return lines.Size{}, lines.ErrHostMissing
	}
	return lines.Size{W: float64(c.cols * CellWidth), H: float64(c.rows * CellHeight)}, nil
}

// Attach implements lines.Surface.
func (c *Canvas) Attach(e lines.Element) {
	c.items[e.ID] = &item{el: e, fade: newFade(e.Opacity)}
}

// Update implements lines.Surface. Opacity changes ease in over the
// following Steps.
func (c *Canvas) Update(e lines.Element) {
	it, ok := c.items[e.ID]
	if !ok {
		return
	}
	it.el = e
	it.fade.target = e.Opacity
}

// Detach implements lines.Surface.
func (c *Canvas) Detach(id lines.ElementID) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// Len returns the number of attached elements.
func (c *Canvas) Len() int { return len(c.items) }

// Opacity returns the displayed opacity of an element.
func (c *Canvas) Opacity(id lines.ElementID) (float64, bool) {
	it, ok := c.items[id]
	if !ok {
		return 0, false
	}
	return it.fade.value(), true
}

// Step advances opacity easing by one frame.
func (c *Canvas) Step() {
	for _, it := range c.items {
		it.fade.step(c.spring)
	}
}

// Theme returns the active theme.
func (c *Canvas) Theme() Theme { return c.theme }

// SetTheme swaps the palette. Attached elements pick it up on the next View.
func (c *Canvas) SetTheme(t Theme) { c.theme = t }

// View renders the layer, one string row per terminal row.
func (c *Canvas) View() string {
	if !c.Mounted() {
		return ""
	}
	g := newGrid(c.cols, c.rows)
	for _, id := range slices.Sorted(maps.Keys(c.items)) {
		it := c.items[id]
		if it.el.Kind == lines.KindLine {
			continue
		}
		g.fill(it.el.Bounds, it.el.Color, it.fade.value())
	}
	return g.render(c.theme, newANSIState(c.profile, c.seqs))
}
