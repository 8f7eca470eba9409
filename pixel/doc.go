// Package pixel provides a vector-space rendering surface for the fit
// engine, backed by real font shaping via github.com/tdewolff/canvas.
// Applied sizes are font point sizes; extents and frame dimensions are
// in canvas's document units (millimetres), measured from the shaped
// glyph runs, so a fit against this surface reflects what an actual
// rasterized rendering would occupy.
//
// The embedded Latin Modern face makes the package usable without any
// font files; load a custom face with NewFace.
package pixel
