// Package fit implements the auto-sizing engine: a cancelable,
// asynchronous, dual-phase binary search over a font-size domain, driven
// by live measurement after each candidate size is applied.
//
// # Algorithm
//
// A run searches [MinSize, MaxSize] for the largest size whose rendered
// content still fits the container:
//
//  1. Primary phase: integer binary search against the primary axis test
//     (height in multi mode, width in single mode). A passing candidate
//     moves the floor up, a failing one moves the ceiling down, until
//     the interval empties.
//  2. Secondary phase (conditional): skipped in single mode unless
//     CheckHeight is set, and skipped when the secondary test already
//     passes at the size phase 1 converged on. Otherwise the range
//     [MinSize, last mid] is re-searched against the secondary test,
//     which is authoritative once entered.
//  3. Finalize: min(low, high), clamped into [MinSize, MaxSize] and
//     floored at zero, is applied one final time and reported through
//     OnReady.
//
// # Cancellation
//
// Every Start mints a fresh generation, superseding any in-flight run.
// Each run captures its generation and re-checks it at every resumption
// point; a stale run routes the cancellation sentinel through the flow
// error channel and unwinds with no further side effects and no OnReady.
// Supersession is not failure: nothing is logged and nothing surfaces to
// the caller. Invalidate performs the same minting on teardown so that
// pending callbacks from a dismantled shell are guaranteed to no-op.
//
// There is no preemption and no timeout: an Apply callback that never
// fires leaves the run suspended indefinitely.
//
// # Concurrency
//
// State is owned by one in-flight run at a time; mutual exclusion comes
// from the generation check rather than from locking the search itself.
// Candidates are applied and measured strictly one at a time, since each
// halving decision depends on the previous measurement.
package fit
