// Package term provides the terminal-cell rendering surface for the fit
// engine. A Box is a container measured in cells, with lipgloss padding
// and border making up its frame; a Text renders source text at an
// integer cell scale and reports its extent through the measurement
// oracle's Element contract.
//
// Measurement is ANSI-aware via lipgloss, so styled content measures by
// its visible cells, not its byte length.
package term
