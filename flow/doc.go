// Package flow provides the callback-driven control-flow primitives the
// fit engine is built on: an ordered asynchronous step sequencer and a
// repeat-while-condition iterator.
//
// # Sequencer
//
// Series executes steps strictly in order, collecting each step's result:
//
//	flow.Series([]flow.Step{
//	    func(next func(error, any)) { next(nil, "first") },
//	    func(next func(error, any)) { next(nil, "second") },
//	}, func(err error, results []any) {
//	    // results == ["first", "second"]
//	})
//
// The first error skips all remaining steps and reaches the terminal
// callback immediately. The terminal callback is always dispatched on a
// fresh scheduling tick, even for fully synchronous chains, so callers
// never observe re-entrancy.
//
// # Repeater
//
// Whilst runs an asynchronous unit of work while a synchronous predicate
// holds:
//
//	flow.Whilst(
//	    func() bool { return low <= high },
//	    func(next func(error)) { probe(next) },
//	    func(err error) { /* loop finished or unwound */ },
//	)
//
// An error passed to the work continuation stops the loop and is
// forwarded to done. The errors package's cancellation sentinel travels
// this channel: it unwinds a superseded run early without being a real
// failure.
//
// # Stack discipline
//
// Both primitives drive iterations with an explicit trampoline loop.
// A million back-to-back synchronous completions consume constant stack;
// recursion only occurs across genuine asynchronous hops, where each hop
// starts from a fresh stack anyway.
//
// Continuations may legally fire from a different goroutine than the one
// that started the chain; internal bookkeeping is mutex-guarded, and
// duplicate or stale completions are ignored.
package flow
