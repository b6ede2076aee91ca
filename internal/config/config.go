package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/flowlines/internal/canvas"
	"github.com/olivier-w/flowlines/internal/lines"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FLOWLINES_"

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the full runtime configuration.
type Config struct {
	// Seed fixes the random source; zero seeds from the clock.
	Seed      int64     `toml:"seed" yaml:"seed"`
	Animation Animation `toml:"animation" yaml:"animation"`
	Display   Display   `toml:"display" yaml:"display"`
	Log       Log       `toml:"log" yaml:"log"`
}

// Animation mirrors lines.Params. The frame interval comes from Display.FPS.
type Animation struct {
	InitialLines     int           `toml:"initial_lines" yaml:"initial_lines"`
	Capacity         int           `toml:"capacity" yaml:"capacity"`
	SpawnInterval    time.Duration `toml:"spawn_interval" yaml:"spawn_interval"`
	SpawnProbability float64       `toml:"spawn_probability" yaml:"spawn_probability"`
	SpeedMin         float64       `toml:"speed_min" yaml:"speed_min"`
	SpeedMax         float64       `toml:"speed_max" yaml:"speed_max"`
	MinSegments      int           `toml:"min_segments" yaml:"min_segments"`
	MaxSegments      int           `toml:"max_segments" yaml:"max_segments"`
	OpacityMin       float64       `toml:"opacity_min" yaml:"opacity_min"`
	OpacityMax       float64       `toml:"opacity_max" yaml:"opacity_max"`
	SegmentMin       float64       `toml:"segment_min" yaml:"segment_min"`
	SegmentMax       float64       `toml:"segment_max" yaml:"segment_max"`
	BoundaryMargin   float64       `toml:"boundary_margin" yaml:"boundary_margin"`
	HorizontalTurn   float64       `toml:"horizontal_turn" yaml:"horizontal_turn"`
	VerticalTurn     float64       `toml:"vertical_turn" yaml:"vertical_turn"`
	MergeDistance    float64       `toml:"merge_distance" yaml:"merge_distance"`
	MergeProbability float64       `toml:"merge_probability" yaml:"merge_probability"`
	TeardownDelay    time.Duration `toml:"teardown_delay" yaml:"teardown_delay"`
	FadeDuration     time.Duration `toml:"fade_duration" yaml:"fade_duration"`
	MarkerDelay      time.Duration `toml:"marker_delay" yaml:"marker_delay"`
	MarkerFade       time.Duration `toml:"marker_fade" yaml:"marker_fade"`
	StrokeWidth      float64       `toml:"stroke_width" yaml:"stroke_width"`
	MarkerSize       float64       `toml:"marker_size" yaml:"marker_size"`
}

// Display controls rendering.
type Display struct {
	Theme      string `toml:"theme" yaml:"theme"`
	Color      string `toml:"color" yaml:"color"`
	FPS        int    `toml:"fps" yaml:"fps"`
	Title      string `toml:"title" yaml:"title"`
	Typewriter bool   `toml:"typewriter" yaml:"typewriter"`
}

// Log controls diagnostics. An empty File discards log output.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

var colorModes = []string{"auto", "truecolor", "ansi256", "ansi", "none"}

// Default returns the stock configuration.
func Default() Config {
	p := lines.DefaultParams()
	return Config{
		Animation: Animation{
			InitialLines:     p.InitialLines,
			Capacity:         p.Capacity,
			SpawnInterval:    p.SpawnInterval,
			SpawnProbability: p.SpawnProbability,
			SpeedMin:         p.SpeedMin,
			SpeedMax:         p.SpeedMax,
			MinSegments:      p.MinSegments,
			MaxSegments:      p.MaxSegments,
			OpacityMin:       p.OpacityMin,
			OpacityMax:       p.OpacityMax,
			SegmentMin:       p.SegmentMin,
			SegmentMax:       p.SegmentMax,
			BoundaryMargin:   p.BoundaryMargin,
			HorizontalTurn:   p.HorizontalTurn,
			VerticalTurn:     p.VerticalTurn,
			MergeDistance:    p.MergeDistance,
			MergeProbability: p.MergeProbability,
			TeardownDelay:    p.TeardownDelay,
			FadeDuration:     p.FadeDuration,
			MarkerDelay:      p.MarkerDelay,
			MarkerFade:       p.MarkerFade,
			StrokeWidth:      p.StrokeWidth,
			MarkerSize:       p.MarkerSize,
		},
		Display: Display{
			Theme:      canvas.DefaultTheme().Name,
			Color:      "auto",
			FPS:        60,
			Title:      "flowlines",
			Typewriter: true,
		},
		Log: Log{Level: "info"},
	}
}

// Load returns the defaults overlaid with the file at path. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("read config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, ErrUnsupportedFormat)
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment. A missing file
// is not an error. Variables already set win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays FLOWLINES_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var merr error
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = seed
		}
	}
	if v, ok := lookup(EnvPrefix + "FPS"); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%sFPS: %w", EnvPrefix, err))
		} else {
			c.Display.FPS = fps
		}
	}
	if v, ok := lookup(EnvPrefix + "THEME"); ok {
		c.Display.Theme = v
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok {
		c.Display.Color = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		c.Log.File = v
	}
	return merr
}

// Params converts the animation section into animator parameters.
func (c Config) Params() lines.Params {
	a := c.Animation
	p := lines.Params{
		InitialLines:     a.InitialLines,
		Capacity:         a.Capacity,
		SpawnInterval:    a.SpawnInterval,
		SpawnProbability: a.SpawnProbability,
		SpeedMin:         a.SpeedMin,
		SpeedMax:         a.SpeedMax,
		MinSegments:      a.MinSegments,
		MaxSegments:      a.MaxSegments,
		OpacityMin:       a.OpacityMin,
		OpacityMax:       a.OpacityMax,
		SegmentMin:       a.SegmentMin,
		SegmentMax:       a.SegmentMax,
		BoundaryMargin:   a.BoundaryMargin,
		HorizontalTurn:   a.HorizontalTurn,
		VerticalTurn:     a.VerticalTurn,
		MergeDistance:    a.MergeDistance,
		MergeProbability: a.MergeProbability,
		TeardownDelay:    a.TeardownDelay,
		FadeDuration:     a.FadeDuration,
		MarkerDelay:      a.MarkerDelay,
		MarkerFade:       a.MarkerFade,
		StrokeWidth:      a.StrokeWidth,
		MarkerSize:       a.MarkerSize,
	}
	if c.Display.FPS > 0 {
		p.FrameInterval = time.Second / time.Duration(c.Display.FPS)
	}
	return p
}

// Theme resolves the configured theme, falling back to the default.
func (c Config) Theme() canvas.Theme {
	if t, ok := canvas.ThemeByName(c.Display.Theme); ok {
		return t
	}
	return canvas.DefaultTheme()
}

// Validate reports every problem in the configuration.
func (c Config) Validate() error {
	var merr error
	if _, ok := canvas.ThemeByName(c.Display.Theme); !ok {
		merr = multierror.Append(merr, fmt.Errorf("unknown theme %q (available: %s)",
			c.Display.Theme, strings.Join(canvas.ThemeNames(), ", ")))
	}
	if !contains(colorModes, strings.ToLower(c.Display.Color)) {
		merr = multierror.Append(merr, fmt.Errorf("unknown color mode %q (available: %s)",
			c.Display.Color, strings.Join(colorModes, ", ")))
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		merr = multierror.Append(merr, fmt.Errorf("fps must lie in [1, 240], got %d", c.Display.FPS))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log level: %w", err))
	}
	if err := c.Params().Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}
	return merr
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
