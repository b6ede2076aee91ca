package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/flowlines/internal/lines"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	p := cfg.Params()
	want := lines.DefaultParams()
	assert.Equal(t, want, p)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "flowlines.toml", `
seed = 42

[animation]
capacity = 20
initial_lines = 5
spawn_interval = "250ms"
merge_probability = 1.0

[display]
theme = "ember"
fps = 30

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, 20, cfg.Animation.Capacity)
	assert.Equal(t, 5, cfg.Animation.InitialLines)
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.SpawnInterval)
	assert.Equal(t, 1.0, cfg.Animation.MergeProbability)
	assert.Equal(t, "ember", cfg.Display.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys keep their defaults.
	assert.Equal(t, Default().Animation.SegmentMax, cfg.Animation.SegmentMax)
	assert.Equal(t, time.Second/30, cfg.Params().FrameInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoadTOMLRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "flowlines.toml", "[display]\nshimmer = true\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.shimmer")
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "flowlines.yaml", `
seed: 7
animation:
  teardown_delay: 2s
  horizontal_turn: 0.1
display:
  theme: ocean
  typewriter: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.EqualValues(t, 7, cfg.Seed)
	assert.Equal(t, 2*time.Second, cfg.Animation.TeardownDelay)
	assert.Equal(t, 0.1, cfg.Animation.HorizontalTurn)
	assert.Equal(t, "ocean", cfg.Display.Theme)
	assert.False(t, cfg.Display.Typewriter)
}

func TestLoadYAMLRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "flowlines.yml", "display:\n  shimmer: true\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "flowlines.json", "{}")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"FLOWLINES_SEED":      "99",
		"FLOWLINES_THEME":     "mono",
		"FLOWLINES_FPS":       "24",
		"FLOWLINES_COLOR":     "ansi256",
		"FLOWLINES_LOG_LEVEL": "warn",
		"FLOWLINES_LOG_FILE":  "/tmp/flowlines.log",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.EqualValues(t, 99, cfg.Seed)
	assert.Equal(t, "mono", cfg.Display.Theme)
	assert.Equal(t, 24, cfg.Display.FPS)
	assert.Equal(t, "ansi256", cfg.Display.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/flowlines.log", cfg.Log.File)
}

func TestApplyEnvCollectsParseErrors(t *testing.T) {
	env := map[string]string{
		"FLOWLINES_SEED": "lots",
		"FLOWLINES_FPS":  "fast",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	err := cfg.ApplyEnv(lookup)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Equal(t, Default().Seed, cfg.Seed)
	assert.Equal(t, Default().Display.FPS, cfg.Display.FPS)
}

func TestLoadDotEnvMissingIsFine(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnvSetsVariables(t *testing.T) {
	path := writeFile(t, ".env", "FLOWLINES_DOTENV_PROBE=ember\n")
	t.Cleanup(func() { os.Unsetenv("FLOWLINES_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "ember", os.Getenv("FLOWLINES_DOTENV_PROBE"))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Display.Theme = "plaid"
	cfg.Display.Color = "sepia"
	cfg.Display.FPS = 0
	cfg.Log.Level = "chatty"
	cfg.Animation.SpawnProbability = 2

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.GreaterOrEqual(t, len(merr.Errors), 5)
	assert.Contains(t, err.Error(), "plaid")
	assert.Contains(t, err.Error(), "sepia")
}

func TestThemeFallsBackToDefault(t *testing.T) {
	cfg := Default()
	cfg.Display.Theme = "plaid"
	assert.Equal(t, "violet", cfg.Theme().Name)

	cfg.Display.Theme = "Ember"
	assert.Equal(t, "ember", cfg.Theme().Name)
}
