package fit

import "github.com/textfit/textfit/measure"

// Content is rendered content that can be re-sized and re-measured, the
// shape both the term and pixel backends provide.
type Content interface {
	measure.Element
	// SetSize applies a candidate size; subsequent ScrollSize calls must
	// reflect it.
	SetSize(size int)
}

// BindSurface wires the engine's collaborator callbacks to a synchronous
// surface: baseline measurement from the container's inner box, size
// application straight through to the content, and the axis tests bound
// per the configured mode (height primary in multi, width primary in
// single).
//
// Shells with genuinely asynchronous layout assign the callback fields
// directly instead.
func (e *Engine) BindSurface(c measure.Container, body Content) {
	e.Measure = func() (float64, float64) {
		return measure.InnerWidth(c), measure.InnerHeight(c)
	}
	e.Apply = func(size int, applied func()) {
		body.SetSize(size)
		applied()
	}
	fitsWidth := func() bool { return measure.FitsWidth(body, measure.InnerWidth(c)) }
	fitsHeight := func() bool { return measure.FitsHeight(body, measure.InnerHeight(c)) }
	if e.cfg.Mode == ModeSingle {
		e.FitsPrimary, e.FitsSecondary = fitsWidth, fitsHeight
	} else {
		e.FitsPrimary, e.FitsSecondary = fitsHeight, fitsWidth
	}
}
