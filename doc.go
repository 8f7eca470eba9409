// Package textfit auto-sizes text so rendered content exactly fills a
// container's available width and/or height, for both single-line
// (headline) and multi-line (paragraph) layouts.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	textfit/         Root package with the one-shot Fit helper
//	├── fit/         The fitting engine: dual-phase binary search with
//	│                generation-token cancellation
//	├── flow/        Callback-driven sequencer and repeater primitives
//	├── measure/     Measurement oracle: inner boxes and fit tests
//	├── errors/      Structured error taxonomy and cancellation sentinel
//	├── term/        Terminal-cell rendering surface (lipgloss)
//	├── pixel/       Vector rendering surface (tdewolff/canvas)
//	└── tui/         bubbletea component that refits on resize
//
// # Quick Start
//
// Fit a headline into a terminal box:
//
//	box := term.Box{Width: 60, Height: 20}
//	txt := term.NewText("BREAKING")
//
//	size, ok := textfit.Fit(fit.Config{Mode: fit.ModeSingle}, box, txt)
//	if ok {
//	    fmt.Println(box.Render(txt.Render()), size)
//	}
//
// For continuous refitting inside a terminal program, mount the tui
// package's model instead; it debounces window resizes and supersedes
// in-flight fits automatically.
//
// # How Fitting Works
//
// The engine binary-searches the size domain, applying each candidate to
// the rendered content and measuring the result before deciding the next
// probe. The primary axis (height for paragraphs, width for headlines)
// is searched first; a conditional second phase shrinks along the other
// axis when it still overflows. Every run is cancelable: starting a new
// fit supersedes the old one at its next measurement checkpoint.
package textfit
