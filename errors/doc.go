// Package errors provides structured error types for the fitting pipeline.
//
// Errors carry a Phase (where the failure occurred) and a Kind (what went
// wrong). The fit engine never lets an error escape as a panic; every
// failure is either logged as a warning or routed through a completion
// callback, so a caller's control flow is never interrupted.
//
// The one special value is ErrCanceled: it is not a failure at all but
// the cooperative-cancellation sentinel threaded through the flow
// package's error channel when a fit run is superseded. Use IsCanceled
// to tell it apart from real errors.
package errors
