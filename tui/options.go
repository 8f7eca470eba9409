package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/textfit/textfit/errors"
	"github.com/textfit/textfit/fit"
)

const defaultResizeThrottle = 50 * time.Millisecond

// Option configures a Model at construction time.
type Option func(*Model)

// WithMinSize sets the lower bound of the scale search range.
func WithMinSize(size int) Option {
	return func(m *Model) { m.cfg.MinSize = size }
}

// WithMaxSize sets the upper bound of the scale search range.
func WithMaxSize(size int) Option {
	return func(m *Model) { m.cfg.MaxSize = size }
}

// WithMode selects single-line or multi-line fitting.
func WithMode(mode fit.Mode) Option {
	return func(m *Model) { m.cfg.Mode = mode }
}

// WithHeightCheck also constrains single-line content by its height. By
// default single-line mode fits width only.
func WithHeightCheck() Option {
	return func(m *Model) { m.cfg.CheckHeight = true }
}

// WithResizeThrottle sets the quiet period after a window resize before
// a refit starts. Resizes arriving inside the window restart it, so a
// drag triggers one fit, not one per event. Non-positive durations
// disable the delay.
func WithResizeThrottle(d time.Duration) Option {
	return func(m *Model) { m.throttle = d }
}

// WithoutAutoResize stops the model from refitting on window resize.
// The owner then decides when to refit by sending Refit's command.
func WithoutAutoResize() Option {
	return func(m *Model) { m.autoResize = false }
}

// WithOnReady registers a callback invoked with the fitted scale each
// time a fit finalizes. It runs on the program's message loop.
func WithOnReady(fn func(size int)) Option {
	return func(m *Model) { m.onReady = fn }
}

// WithStyle sets the lipgloss style framing the fitted content. Its
// border and padding shrink the usable area the text is fitted into.
func WithStyle(style lipgloss.Style) Option {
	return func(m *Model) { m.style = style }
}

// WithPerfectFit is retained for callers of older releases.
//
// Deprecated: the iterative upscale pass it once toggled is gone; the
// binary search always converges to the same result. The option is
// ignored with a logged warning.
func WithPerfectFit(bool) Option {
	return func(*Model) {
		Logger().Warn("ignoring deprecated option",
			zap.Error(errors.UnsupportedOption("perfect_fit")))
	}
}
