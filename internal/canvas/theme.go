package canvas

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/flowlines/internal/lines"
)

// Theme resolves the four semantic line colors and the background they fade into.
type Theme struct {
	Name       string
	Background colorful.Color
	Palette    [lines.NumColors]colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func newTheme(name, bg string, palette ...string) Theme {
	t := Theme{Name: name, Background: mustHex(bg)}
	for i := range t.Palette {
		t.Palette[i] = mustHex(palette[i%len(palette)])
	}
	return t
}

var themes = []Theme{
	newTheme("violet", "#121212", "#9575cd", "#ba68c8", "#7986cb", "#673ab7"),
	newTheme("ocean", "#0b1320", "#4fc3f7", "#26a69a", "#5c6bc0", "#80deea"),
	newTheme("ember", "#140d0b", "#ff8c00", "#ff5f1f", "#ffd166", "#ef476f"),
	newTheme("mono", "#101010", "#e0e0e0", "#bdbdbd", "#9e9e9e", "#757575"),
}

// DefaultTheme is the palette used when none is configured.
func DefaultTheme() Theme { return themes[0] }

// ThemeNames lists the built-in themes in cycling order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ThemeByName looks a built-in theme up, ignoring case.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// Next cycles to the following built-in theme.
func (t Theme) Next() Theme {
	for i, th := range themes {
		if th.Name == t.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return DefaultTheme()
}

// Resolve returns the color of slot c.
func (t Theme) Resolve(c lines.Color) colorful.Color {
	return t.Palette[int(c)%lines.NumColors]
}

// Shade blends slot c into the background by opacity.
func (t Theme) Shade(c lines.Color, opacity float64) colorful.Color {
	return t.Background.BlendRgb(t.Resolve(c), clamp01(opacity)).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
