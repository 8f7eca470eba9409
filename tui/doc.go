// Package tui provides a bubbletea component that keeps text fitted to
// the terminal window.
//
// # Usage
//
// Mount the model inside a program and forward messages to it:
//
//	m := tui.New("BREAKING NEWS",
//	    tui.WithMode(fit.ModeSingle),
//	    tui.WithStyle(lipgloss.NewStyle().Padding(1)),
//	)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//
// The model fits on the program's initial tea.WindowSizeMsg and refits
// on every later resize, debounced by the resize throttle so a drag
// produces one fit rather than one per event. SetContent refits
// immediately.
//
// # Supersession
//
// Every refit supersedes the previous one through the engine's
// generation token: an in-flight run notices at its next checkpoint and
// unwinds without touching the model. Completions are delivered as
// messages tagged with the run's generation, and stale ones are
// dropped, so the model only ever shows a scale computed against the
// current window and content.
package tui
