package ui

import "time"

const (
	typeStep     = 100 * time.Millisecond
	blinkPeriod  = 700 * time.Millisecond
	cursorLinger = 1500 * time.Millisecond
)

// typewriter reveals a title one rune at a time behind a blinking cursor.
// All state derives from the elapsed time fed through advance.
type typewriter struct {
	text    []rune
	elapsed time.Duration
	enabled bool
}

func newTypewriter(text string, enabled bool) typewriter {
	return typewriter{text: []rune(text), enabled: enabled}
}

func (t *typewriter) advance(d time.Duration) {
	if t.enabled && !t.finished() {
		t.elapsed += d
	}
}

func (t typewriter) typedFor() time.Duration {
	return time.Duration(len(t.text)) * typeStep
}

func (t typewriter) shown() int {
	if !t.enabled {
		return len(t.text)
	}
	return min(len(t.text), int(t.elapsed/typeStep))
}

func (t typewriter) cursorVisible() bool {
	if !t.enabled || t.elapsed >= t.typedFor()+cursorLinger {
		return false
	}
	return t.elapsed%blinkPeriod < blinkPeriod/2
}

// finished reports whether the text is fully shown and the cursor is gone.
func (t typewriter) finished() bool {
	return !t.enabled || t.elapsed >= t.typedFor()+cursorLinger
}

func (t typewriter) View() string {
	s := titleStyle.Render(string(t.text[:t.shown()]))
	if t.cursorVisible() {
		s += cursorStyle.Render("▌")
	}
	return s
}
