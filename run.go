package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/olivier-w/flowlines/internal/canvas"
	"github.com/olivier-w/flowlines/internal/config"
	"github.com/olivier-w/flowlines/internal/lines"
	"github.com/olivier-w/flowlines/internal/ui"
	"github.com/olivier-w/flowlines/internal/util"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger builds the application logger. The TUI owns stdout, so output
// goes to the configured file or nowhere.
func newLogger(c config.Log) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closer := func() error { return nil }
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "flowlines",
	})
	return logger, closer, nil
}

func newAnimation(cfg config.Config, logger *log.Logger) (*lines.Animator, *canvas.Canvas) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seeded", "seed", seed)

	c := canvas.New(cfg.Theme(), canvas.ParseProfile(cfg.Display.Color), cfg.Display.FPS)
	a := lines.New(c,
		lines.WithParams(cfg.Params()),
		lines.WithRand(lines.NewRand(seed)),
		lines.WithLogger(logger),
	)
	return a, c
}

func runInteractive(cfg config.Config, logger *log.Logger) error {
	a, c := newAnimation(cfg, logger)
	m := ui.New(a, c, ui.Options{
		Title:      cfg.Display.Title,
		Typewriter: cfg.Display.Typewriter,
		Logger:     logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// runHeadless animates frames ticks on an off-screen canvas and writes the
// last frame followed by a stats line.
func runHeadless(w io.Writer, cfg config.Config, logger *log.Logger, frames, cols, rows int) error {
	a, c := newAnimation(cfg, logger)
	c.Resize(cols, rows)
	if err := a.Start(); err != nil {
		return fmt.Errorf("start animation: %w", err)
	}
	defer a.Stop()

	for range frames {
		if err := a.Tick(); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		c.Step()
	}

	st := a.Stats()
	if _, err := fmt.Fprintln(w, c.View()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "lines %s  segments %d  spawned %d  merges %d  removed %d  %s  %s\n",
		util.Ratio(st.Active, st.Capacity),
		st.Segments, st.Spawned, st.Merges, st.Removed,
		util.FormatDuration(st.Elapsed),
		c.Theme().Name,
	)
	return err
}
