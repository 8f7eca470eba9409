package flow

import "sync"

// Step is one unit of asynchronous work in a Series. The step must call
// next exactly once, either synchronously before returning or later from
// another goroutine. Duplicate completions are ignored.
type Step func(next func(err error, result any))

// Work is one iteration body for Whilst. It must call next exactly once.
type Work func(next func(err error))

// dispatch defers f to a fresh scheduling tick so terminal callbacks never
// run inside the frame that started the chain.
func dispatch(f func()) {
	go f()
}

// Series runs steps strictly in order: step i+1 starts only after step i
// reports success. The first error short-circuits the remaining steps and
// reaches final immediately. On full success final receives every step's
// result, positionally aligned with the step order.
//
// final is always dispatched asynchronously, even when every step
// completes synchronously, so the caller cannot re-enter itself during
// its own invocation. An empty step list completes with a nil error.
func Series(steps []Step, final func(err error, results []any)) {
	if final == nil {
		final = func(error, []any) {}
	}
	s := &series{
		steps:   steps,
		results: make([]any, 0, len(steps)),
		final:   final,
	}
	s.drive()
}

type series struct {
	mu       sync.Mutex
	steps    []Step
	idx      int
	results  []any
	finished bool
	final    func(error, []any)
}

// drive is the trampoline: it keeps invoking steps in a plain loop for as
// long as they complete synchronously, and hands off to the continuation
// when one suspends. Long synchronous chains therefore never grow the
// stack.
func (s *series) drive() {
	for {
		s.mu.Lock()
		if s.finished {
			s.mu.Unlock()
			return
		}
		if s.idx >= len(s.steps) {
			s.finished = true
			results := s.results
			s.mu.Unlock()
			dispatch(func() { s.final(nil, results) })
			return
		}
		seq := s.idx
		step := s.steps[seq]
		s.mu.Unlock()

		if !s.invoke(seq, step) {
			return
		}
	}
}

// invoke runs one step and reports whether the driver loop may continue
// synchronously. If the step suspends, its continuation re-enters drive
// on whichever goroutine completes it.
func (s *series) invoke(seq int, step Step) bool {
	completedSync := false
	returned := false

	step(func(err error, result any) {
		s.mu.Lock()
		if s.finished || s.idx != seq {
			// duplicate or stale completion
			s.mu.Unlock()
			return
		}
		if err != nil {
			s.finished = true
			s.mu.Unlock()
			dispatch(func() { s.final(err, nil) })
			return
		}
		s.results = append(s.results, result)
		s.idx++
		resume := returned
		if !returned {
			completedSync = true
		}
		s.mu.Unlock()
		if resume {
			s.drive()
		}
	})

	s.mu.Lock()
	returned = true
	advance := completedSync
	s.mu.Unlock()
	return advance
}

// Whilst repeatedly invokes work while the synchronous predicate test
// holds. If test is false initially, done fires with nil without work
// ever being called. An error reported by work stops iteration and is
// forwarded to done; the cancellation sentinel travels this channel to
// unwind a superseded run without treating it as a failure.
//
// The driver is an explicit loop, so arbitrarily long runs of
// synchronously-completing iterations cannot overflow the stack.
func Whilst(test func() bool, work Work, done func(err error)) {
	if done == nil {
		done = func(error) {}
	}
	w := &whilst{test: test, work: work, done: done}
	w.drive()
}

type whilst struct {
	mu       sync.Mutex
	test     func() bool
	work     Work
	done     func(error)
	iter     int
	doneIter int
	finished bool
}

func (w *whilst) drive() {
	for {
		w.mu.Lock()
		if w.finished {
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		if !w.test() {
			w.finish(nil)
			return
		}
		if !w.invoke() {
			return
		}
	}
}

func (w *whilst) invoke() bool {
	w.mu.Lock()
	w.iter++
	seq := w.iter
	w.mu.Unlock()

	completedSync := false
	returned := false

	w.work(func(err error) {
		w.mu.Lock()
		if w.finished || seq != w.doneIter+1 {
			// duplicate or stale completion
			w.mu.Unlock()
			return
		}
		w.doneIter = seq
		if err != nil {
			w.finished = true
			w.mu.Unlock()
			w.done(err)
			return
		}
		resume := returned
		if !returned {
			completedSync = true
		}
		w.mu.Unlock()
		if resume {
			w.drive()
		}
	})

	w.mu.Lock()
	returned = true
	advance := completedSync
	w.mu.Unlock()
	return advance
}

func (w *whilst) finish(err error) {
	w.mu.Lock()
	if w.finished {
		w.mu.Unlock()
		return
	}
	w.finished = true
	w.mu.Unlock()
	w.done(err)
}
