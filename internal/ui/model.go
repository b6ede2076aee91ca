package ui

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/olivier-w/flowlines/internal/canvas"
	"github.com/olivier-w/flowlines/internal/lines"
)

// Options configures the TUI.
type Options struct {
	Title      string
	Typewriter bool
	Logger     *log.Logger
}

// Model is the Bubbletea model for the flowlines TUI.
type Model struct {
	anim   *lines.Animator
	canvas *canvas.Canvas
	logger *log.Logger

	keys  keyMap
	help  help.Model
	title typewriter
	frame time.Duration

	width    int
	height   int
	started  bool
	paused   bool // toggled by the user
	focused  bool
	quitting bool
}

// New creates a Model drawing a onto c. The animator must use c as its
// surface; it is started once the terminal size is known.
func New(a *lines.Animator, c *canvas.Canvas, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpStyle
	h.Styles.FullDesc = helpStyle
	return Model{
		anim:    a,
		canvas:  c,
		logger:  logger,
		keys:    defaultKeys(),
		help:    h,
		title:   newTypewriter(opts.Title, opts.Typewriter),
		frame:   a.Params().FrameInterval,
		focused: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.frame), tea.SetWindowTitle(windowTitle(string(m.title.text), true)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.tick()
		return m, tickCmd(m.frame)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		return m, m.syncVisibility()

	case tea.BlurMsg:
		m.focused = false
		return m, m.syncVisibility()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.anim.Stop()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, m.syncVisibility()
	case key.Matches(msg, m.keys.Theme):
		next := m.canvas.Theme().Next()
		m.canvas.SetTheme(next)
		m.logger.Debug("theme changed", "theme", next.Name)
	case key.Matches(msg, m.keys.Restart):
		if m.started {
			if err := m.anim.Restart(); err != nil {
				m.logger.Warn("restart failed", "err", err)
			}
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) tick() {
	m.title.advance(m.frame)
	if !m.started || !m.anim.Visible() {
		return
	}
	if err := m.anim.Tick(); err != nil {
		if errors.Is(err, lines.ErrHostMissing) {
			m.logger.Debug("tick skipped", "err", err)
		} else {
			m.logger.Warn("tick failed", "err", err)
		}
		return
	}
	m.canvas.Step()
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.canvas.Resize(w, h-2)
	m.logger.Debug("resized", "cols", w, "rows", h-2)

	if m.started || !m.canvas.Mounted() {
		return
	}
	if err := m.anim.Start(); err != nil {
		m.logger.Warn("start failed", "err", err)
		return
	}
	m.started = true
}

func (m *Model) syncVisibility() tea.Cmd {
	visible := m.focused && !m.paused
	if visible == m.anim.Visible() {
		return nil
	}
	m.anim.SetVisible(visible)
	return tea.SetWindowTitle(windowTitle(string(m.title.text), visible))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.title.View())
	if !m.canvas.Mounted() {
		return b.String()
	}

	bottom := m.bottomRow()
	// Full help takes rows away from the bottom of the canvas.
	rows := strings.Split(m.canvas.View(), "\n")
	if extra := lipgloss.Height(bottom) - 1; extra > 0 {
		rows = rows[:max(len(rows)-extra, 0)]
	}
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(row)
	}
	b.WriteByte('\n')
	b.WriteString(bottom)
	return b.String()
}

func (m Model) bottomRow() string {
	status := statusStyle.Render(renderStatus(m.anim.Stats(), m.anim.Visible(), m.canvas.Theme().Name))
	if m.help.ShowAll {
		return status + "\n" + m.help.View(m.keys)
	}
	short := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(status) - lipgloss.Width(short)
	if gap < 2 {
		return status
	}
	return status + strings.Repeat(" ", gap) + short
}
