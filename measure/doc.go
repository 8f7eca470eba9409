// Package measure is the oracle the fit engine consults: it computes a
// container's usable inner box and tests whether rendered content fits a
// target width or height within a fixed one-unit tolerance.
//
// Units are backend-defined. The term package measures in terminal cells,
// the pixel package in points; the oracle only assumes they are
// consistent between Container and Element.
package measure
