package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olivier-w/flowlines/internal/config"
)

const rootDesc = `Draws a slowly evolving field of right-angled lines in the terminal.

Lines enter from the edges, grow segment by segment, occasionally turn or merge
into a neighbour, and fade away once they have run their course.

When stdout is not a terminal, or --frames is set, flowlines runs headless and
prints the final frame followed by a stats line.`

const rootExample = `  flowlines
  flowlines --theme ocean --fps 30
  flowlines --config flowlines.toml --log-file /tmp/flowlines.log --log-level debug
  flowlines --frames 600 --cols 100 --rows 30 --seed 42`

// Headless defaults.
const (
	defaultFrames = 300
	defaultCols   = 80
	defaultRows   = 24
)

type rootArgs struct {
	configPath string
	seed       int64
	theme      string
	color      string
	fps        int
	title      string
	logLevel   string
	logFile    string
	frames     int
	cols       int
	rows       int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	args := &rootArgs{}
	cmd := &cobra.Command{
		Use:           "flowlines",
		Short:         "Flowing-line background animation for the terminal",
		Long:          rootDesc,
		Example:       rootExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			out := cmd.OutOrStdout()
			if args.frames > 0 || !isTerminal(out) {
				frames := args.frames
				if frames <= 0 {
					frames = defaultFrames
				}
				return runHeadless(out, cfg, logger, frames, args.cols, args.rows)
			}
			return runInteractive(cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&args.configPath, "config", "c", "", "Path to a .toml or .yaml config file")
	f.Int64Var(&args.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	f.StringVarP(&args.theme, "theme", "t", "", "Color theme (violet, ocean, ember, mono)")
	f.StringVar(&args.color, "color", "", "Color mode (auto, truecolor, ansi256, ansi, none)")
	f.IntVar(&args.fps, "fps", 0, "Frames per second")
	f.StringVar(&args.title, "title", "", "Title typed above the animation")
	f.StringVar(&args.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&args.logFile, "log-file", "", "Write logs to this file")
	f.IntVar(&args.frames, "frames", 0, "Run headless for this many frames")
	f.IntVar(&args.cols, "cols", defaultCols, "Headless canvas width in cells")
	f.IntVar(&args.rows, "rows", defaultRows, "Headless canvas height in cells")

	if err := cmd.MarkFlagFilename("config", "toml", "yaml", "yml"); err != nil {
		panic(err)
	}

	return cmd
}

// resolveConfig layers defaults, the config file, the environment and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args *rootArgs) (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(args.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = args.seed
	}
	if f.Changed("theme") {
		cfg.Display.Theme = args.theme
	}
	if f.Changed("color") {
		cfg.Display.Color = args.color
	}
	if f.Changed("fps") {
		cfg.Display.FPS = args.fps
	}
	if f.Changed("title") {
		cfg.Display.Title = args.title
	}
	if f.Changed("log-level") {
		cfg.Log.Level = args.logLevel
	}
	if f.Changed("log-file") {
		cfg.Log.File = args.logFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
