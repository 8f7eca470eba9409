package fit

import (
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/textfit/textfit/errors"
	"github.com/textfit/textfit/flow"
)

// State tracks a fit run through its phases. Aborted is reachable from
// any non-idle state when the run's generation is invalidated.
type State int

const (
	StateIdle State = iota
	StateSearchingPrimary
	StateSearchingSecondary
	StateFinalizing
	StateReady
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateSearchingPrimary:
		return "searching_primary"
	case StateSearchingSecondary:
		return "searching_secondary"
	case StateFinalizing:
		return "finalizing"
	case StateReady:
		return "ready"
	case StateAborted:
		return "aborted"
	default:
		return "idle"
	}
}

// Engine drives the dual-phase binary search over the font-size domain.
//
// The collaborator callbacks are injected by the shell that owns the
// rendered surface:
//
//   - Measure returns the container's current usable width and height.
//   - Apply mutates the rendered size and invokes applied only once
//     layout for that size has settled. It may complete synchronously.
//   - FitsPrimary and FitsSecondary test the current rendered extent
//     against whichever axis the mode dictates (height then width in
//     multi mode, width then height in single mode).
//   - OnReady receives the finalized size. It never fires for a run that
//     was superseded or aborted.
//   - OnSettled, if set, fires exactly once per run as it unwinds,
//     whether finalized (ready true) or superseded/aborted (ready
//     false). Shells use it to release waiters; the epoch identifies
//     which run settled.
//
// A single Engine is reused across fit requests. Each Start supersedes
// any in-flight run: the old run observes a stale generation at its next
// checkpoint and unwinds silently.
type Engine struct {
	Measure       func() (width, height float64)
	Apply         func(size int, applied func())
	FitsPrimary   func() bool
	FitsSecondary func() bool
	OnReady       func(size int)
	OnSettled     func(epoch uint64, size int, ready bool)

	cfg   Config
	epoch atomic.Uint64

	mu        sync.Mutex
	state     State
	candidate int
	hasSize   bool
	ready     bool
}

// NewEngine creates an engine with the given (normalized) config. The
// collaborator fields must be assigned before Start.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.Normalized()}
}

// Config returns the engine's normalized configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Epoch returns the current generation. A run is live only while the
// epoch it captured at Start equals this value.
func (e *Engine) Epoch() uint64 {
	return e.epoch.Load()
}

// Invalidate mints a fresh generation without starting a new run. Any
// in-flight run observes staleness at its next checkpoint and unwinds
// without side effects. Call it on teardown of the owning shell.
func (e *Engine) Invalidate() {
	e.epoch.Add(1)
	e.mu.Lock()
	if e.state != StateIdle && e.state != StateReady {
		e.state = StateAborted
	}
	e.ready = false
	e.mu.Unlock()
}

// State returns the current run state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Size returns the most recent candidate size and whether it is a
// finalized fit not yet invalidated by a newer request.
func (e *Engine) Size() (size int, ready bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.candidate, e.ready
}

// Start begins a fit run and returns the generation minted for it.
//
// The baseline container dimensions must both be positive finite
// numbers; otherwise the run aborts before any search step with a logged
// warning and no OnReady. Completion is always signaled via callback,
// never via a raised error.
func (e *Engine) Start() uint64 {
	epoch := e.epoch.Add(1)

	e.mu.Lock()
	e.state = StateIdle
	e.ready = false
	e.hasSize = false
	e.mu.Unlock()

	// Each run snapshots the callbacks it works through, so a shell may
	// rebind them for the next request without racing a run that is
	// still unwinding.
	r := &run{
		eng:           e,
		cfg:           e.cfg,
		epoch:         epoch,
		applyFn:       e.Apply,
		fitsPrimary:   e.FitsPrimary,
		fitsSecondary: e.FitsSecondary,
		onReady:       e.OnReady,
		onSettled:     e.OnSettled,
	}

	if e.Measure == nil || e.Apply == nil || e.FitsPrimary == nil {
		Logger().Warn("fit engine not fully wired, refusing to start",
			zap.Bool("measure", e.Measure != nil),
			zap.Bool("apply", e.Apply != nil),
			zap.Bool("fits_primary", e.FitsPrimary != nil))
		r.settle(0, false)
		return epoch
	}

	w, h := e.Measure()
	if !usable(w) || !usable(h) {
		Logger().Warn("fit aborted before search",
			zap.Error(errors.BadBaseline(w, h)),
			zap.Float64("width", w),
			zap.Float64("height", h))
		r.settle(0, false)
		return epoch
	}

	flow.Series([]flow.Step{r.searchPrimary, r.searchSecondary}, r.finish)
	return epoch
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// noteCandidate records a FitState mutation: the candidate changes and
// any previously finalized fit is no longer current.
func (e *Engine) noteCandidate(size int) {
	e.mu.Lock()
	e.candidate = size
	e.hasSize = true
	e.ready = false
	e.mu.Unlock()
}

func (e *Engine) markReady(size int) {
	e.mu.Lock()
	e.candidate = size
	e.hasSize = true
	e.ready = true
	e.state = StateReady
	e.mu.Unlock()
}

// run is the state of one fit request. The search range (low, high) is
// owned exclusively by the run; no other run ever touches it.
type run struct {
	eng           *Engine
	applyFn       func(int, func())
	fitsPrimary   func() bool
	fitsSecondary func() bool
	onReady       func(int)
	onSettled     func(uint64, int, bool)
	cfg           Config
	epoch         uint64
	low           int
	high          int
	mid           int
}

func (r *run) settle(size int, ready bool) {
	if r.onSettled != nil {
		r.onSettled(r.epoch, size, ready)
	}
}

// stale reports whether this run has been superseded. Checked at every
// resumption point; a stale run unwinds through the cancellation
// sentinel without further side effects.
func (r *run) stale() bool {
	return r.epoch != r.eng.epoch.Load()
}

func (r *run) apply(size int, applied func()) {
	r.eng.noteCandidate(size)
	r.applyFn(size, applied)
}

// search runs one binary-search phase over [r.low, r.high] for the
// largest size passing fits. Candidates are applied and measured strictly
// one at a time; each decision depends on the previous measurement.
func (r *run) search(fits func() bool, next func(error, any)) {
	flow.Whilst(
		func() bool { return r.low <= r.high },
		func(step func(error)) {
			if r.stale() {
				step(errors.Canceled())
				return
			}
			r.mid = (r.low + r.high) / 2
			r.apply(r.mid, func() {
				if r.stale() {
					step(errors.Canceled())
					return
				}
				if fits() {
					r.low = r.mid + 1
				} else {
					r.high = r.mid - 1
				}
				step(nil)
			})
		},
		func(err error) { next(err, r.mid) },
	)
}

func (r *run) searchPrimary(next func(error, any)) {
	r.eng.setState(StateSearchingPrimary)
	r.low, r.high = r.cfg.MinSize, r.cfg.MaxSize
	r.search(r.fitsPrimary, next)
}

func (r *run) searchSecondary(next func(error, any)) {
	if r.cfg.Mode == ModeSingle && !r.cfg.CheckHeight {
		next(nil, nil)
		return
	}
	if r.stale() {
		next(errors.Canceled(), nil)
		return
	}
	if r.fitsSecondary == nil || r.fitsSecondary() {
		// No shrink needed at the size phase 1 converged on.
		next(nil, nil)
		return
	}
	// The secondary axis is authoritative once entered: the narrowed
	// range is searched against the secondary test only, without
	// re-validating the primary fit at the size it lands on. Known,
	// accepted trade-off.
	r.eng.setState(StateSearchingSecondary)
	r.low, r.high = r.cfg.MinSize, r.mid
	r.search(r.fitsSecondary, next)
}

func (r *run) finish(err error, _ []any) {
	if err != nil {
		if !errors.IsCanceled(err) {
			Logger().Warn("fit run unwound with error", zap.Error(err))
		}
		if !r.stale() {
			r.eng.setState(StateAborted)
		}
		r.settle(0, false)
		return
	}
	if r.stale() {
		r.settle(0, false)
		return
	}

	r.eng.setState(StateFinalizing)
	final := min(r.low, r.high)
	if final > r.cfg.MaxSize {
		final = r.cfg.MaxSize
	}
	if final < r.cfg.MinSize {
		final = r.cfg.MinSize
	}
	if final < 0 {
		// Last-resort sanity clamp.
		final = 0
	}

	r.apply(final, func() {
		if r.stale() {
			r.settle(0, false)
			return
		}
		r.eng.markReady(final)
		if r.onReady != nil {
			r.onReady(final)
		}
		r.settle(final, true)
	})
}
