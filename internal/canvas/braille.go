package canvas

import (
	"math"
	"strings"

	"github.com/olivier-w/flowlines/internal/lines"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type dot struct {
	alpha float64
	color lines.Color
}

// grid is a dot raster at braille resolution.
type grid struct {
	cols int
	rows int
	w    int
	h    int
	dots []dot
}

func newGrid(cols, rows int) *grid {
	w, h := cols*2, rows*4
	return &grid{cols: cols, rows: rows, w: w, h: h, dots: make([]dot, w*h)}
}

// fill marks every dot the rect touches. The most opaque element wins a dot.
func (g *grid) fill(r lines.Rect, c lines.Color, alpha float64) {
	if r.W <= 0 || r.H <= 0 || alpha <= 0 {
		return
	}
	x0 := int(math.Floor(r.X / dotWidth))
	y0 := int(math.Floor(r.Y / dotHeight))
	x1 := int(math.Ceil((r.X+r.W)/dotWidth)) - 1
	y1 := int(math.Ceil((r.Y+r.H)/dotHeight)) - 1

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.w-1), min(y1, g.h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := &g.dots[y*g.w+x]
			if alpha > d.alpha {
				d.alpha = alpha
				d.color = c
			}
		}
	}
}

// cell folds the 2x4 dots under a terminal cell into a braille pattern and
// the color of its strongest dot.
func (g *grid) cell(col, row int) (pattern uint, best dot) {
	for dx := range 2 {
		for dy := range 4 {
			d := g.dots[(row*4+dy)*g.w+col*2+dx]
			if d.alpha <= 0 {
				continue
			}
			pattern |= 1 << brailleBits[dx][dy]
			if d.alpha > best.alpha {
				best = d
			}
		}
	}
	return pattern, best
}

func (g *grid) render(t Theme, st ansiState) string {
	rows := make([]string, g.rows)
	for row := range g.rows {
		var line strings.Builder
		for col := range g.cols {
			pattern, best := g.cell(col, row)
			if pattern == 0 {
				st.reset(&line)
				line.WriteByte(' ')
				continue
			}
			st.set(&line, t.Shade(best.color, best.alpha))
			line.WriteRune(rune(0x2800 + pattern))
		}
		st.reset(&line)
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}
