package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/textfit/textfit/fit"
	"github.com/textfit/textfit/measure"
	"github.com/textfit/textfit/term"
)

// Model is a bubbletea component that keeps a piece of text fitted to
// the terminal window. It refits when the window resizes (debounced by
// the resize throttle) and when the content changes; an in-flight fit
// is superseded rather than awaited.
type Model struct {
	engine *fit.Engine
	text   *term.Text
	style  lipgloss.Style

	cfg        fit.Config
	throttle   time.Duration
	autoResize bool
	onReady    func(size int)

	width     int
	height    int
	size      int
	ready     bool
	resizeSeq int
}

// refitMsg fires when a resize quiet period elapses. A stale seq means
// another resize restarted the clock, so the message is dropped.
type refitMsg struct {
	seq int
}

// settledMsg carries a run's completion out of the engine and back onto
// the program's message loop.
type settledMsg struct {
	epoch uint64
	size  int
	ready bool
}

// New creates a model fitting content. The zero configuration fits
// multi-line text over the default size range with a 50ms resize
// throttle.
func New(content string, opts ...Option) *Model {
	m := &Model{
		text:       term.NewText(content),
		throttle:   defaultResizeThrottle,
		autoResize: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.engine = fit.NewEngine(m.cfg)
	m.cfg = m.engine.Config()
	return m
}

// Init implements tea.Model. The first fit is driven by the initial
// tea.WindowSizeMsg the program delivers.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.autoResize {
			return m, nil
		}
		m.resizeSeq++
		if m.throttle <= 0 {
			return m, m.startFit()
		}
		seq := m.resizeSeq
		return m, tea.Tick(m.throttle, func(time.Time) tea.Msg {
			return refitMsg{seq: seq}
		})

	case refitMsg:
		if msg.seq != m.resizeSeq {
			return m, nil
		}
		return m, m.startFit()

	case settledMsg:
		if msg.epoch != m.engine.Epoch() {
			// A newer fit superseded this one before it settled.
			return m, nil
		}
		if !msg.ready {
			m.ready = false
			return m, nil
		}
		m.size, m.ready = msg.size, true
		if m.onReady != nil {
			m.onReady(msg.size)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model, rendering the content at its most recently
// fitted scale inside the configured style.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.style.Render(m.text.Render())
}

// SetContent replaces the fitted text and returns the command that
// refits it to the current window.
func (m *Model) SetContent(content string) tea.Cmd {
	m.text.SetContent(content)
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	return m.startFit()
}

// Content returns the current text.
func (m *Model) Content() string {
	return m.text.Content()
}

// Refit returns a command running a fresh fit against the current
// window, for owners that disabled auto-resize.
func (m *Model) Refit() tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	return m.startFit()
}

// Size returns the fitted scale and whether it reflects the current
// window and content.
func (m *Model) Size() (size int, ready bool) {
	return m.size, m.ready
}

// Close invalidates any in-flight fit. Call it when the model is
// unmounted; a run mid-search unwinds at its next checkpoint.
func (m *Model) Close() {
	m.engine.Invalidate()
}

// startFit binds the engine to the current window box and begins a run.
// The returned command blocks a program goroutine until that run
// settles; each run owns its channel, so superseded runs cannot cross
// deliveries.
func (m *Model) startFit() tea.Cmd {
	m.ready = false
	box := term.Box{Style: m.style, Width: m.width, Height: m.height}
	if m.cfg.Mode == fit.ModeMulti {
		m.text.SetWrapWidth(int(measure.InnerWidth(box)))
	} else {
		m.text.SetWrapWidth(0)
	}
	m.engine.BindSurface(box, m.text)

	settled := make(chan settledMsg, 1)
	m.engine.OnSettled = func(epoch uint64, size int, ready bool) {
		settled <- settledMsg{epoch: epoch, size: size, ready: ready}
	}
	epoch := m.engine.Start()
	Logger().Debug("fit started",
		zap.Uint64("epoch", epoch),
		zap.Int("width", m.width),
		zap.Int("height", m.height))

	return func() tea.Msg {
		return <-settled
	}
}
