package canvas

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ParseProfile maps a config value onto a termenv profile. "auto" and unknown
// values defer to the environment.
func ParseProfile(s string) termenv.Profile {
	switch strings.ToLower(s) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "ansi256", "256":
		return termenv.ANSI256
	case "ansi", "16":
		return termenv.ANSI
	case "none", "ascii":
		return termenv.Ascii
	default:
		return termenv.EnvColorProfile()
	}
}

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// ansiState emits foreground sequences only when the color changes.
type ansiState struct {
	profile termenv.Profile
	cache   map[string]string
	current string
}

func newANSIState(p termenv.Profile, cache map[string]string) ansiState {
	return ansiState{profile: p, cache: cache}
}

func (s *ansiState) set(sb *strings.Builder, c colorful.Color) {
	if s.profile == termenv.Ascii {
		return
	}
	hex := c.Hex()
	if hex == s.current {
		return
	}
	seq, ok := s.cache[hex]
	if !ok {
		if fg := s.profile.Color(hex).Sequence(false); fg != "" {
			seq = termenv.CSI + fg + "m"
		}
		s.cache[hex] = seq
	}
	sb.WriteString(seq)
	s.current = hex
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == termenv.Ascii || s.current == "" {
		return
	}
	sb.WriteString(resetSeq)
	s.current = ""
}
