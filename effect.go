package depixel

import (
	"errors"
	"time"
)

// ErrNoSource is returned when an effect or canvas is constructed without a
// usable source image.
var ErrNoSource = errors.New("depixel: no image source")

// Defaults applied by New for zero-valued Options fields.
const (
	DefaultInitialGranularity = 60.0
	DefaultFinalGranularity   = 1.0
	DefaultDuration           = 1500 * time.Millisecond
)

// Options configures an Effect. The zero value selects the defaults noted on
// each field. Options are read at New and never mutated afterwards, by
// AnimateReverse included.
type Options struct {
	// InitialGranularity is the block size the animation starts from.
	// Values <= 0 select the default of 60.
	InitialGranularity float64

	// FinalGranularity is the block size the animation ends on. Values <= 1
	// all render at full fidelity; values <= 0 select the default of 1.
	FinalGranularity float64

	// Duration is how long a run takes, delay excluded. Values <= 0 select
	// the default of 1500ms.
	Duration time.Duration

	// Easing names the curve shaping progress, e.g. "linear" or
	// "easeInOutCubic". Empty or unknown names fall back to easeOutQuad.
	Easing string

	// AutoStart makes New call Animate once immediately. The first frame
	// still renders on the first scheduler tick.
	AutoStart bool

	// Delay holds the starting granularity on screen before the transition
	// begins. Negative values are treated as zero.
	Delay time.Duration

	// OnComplete, if set, is called at most once per run, after the final
	// render of a naturally completed run and before its done channel
	// closes. It is not called for stopped runs.
	OnComplete func()

	// Scheduler drives the animation frames. Nil selects a LoopScheduler
	// on a fresh monotonic clock; keep a reference to pump it.
	Scheduler Scheduler
}

// Effect is a pixelation reveal bound to one canvas. At most one animation
// run is active per effect; starting a new run cancels the previous one
// synchronously.
//
// Effect is not safe for concurrent use. Drive it from the same goroutine
// that pumps its scheduler.
type Effect struct {
	opts     Options
	renderer *Renderer
	sched    Scheduler
	run      *run
}

// New creates an effect on the given canvas. Returns ErrNoSource if canvas
// is nil. The surface is left untouched until the first render call or
// animation tick; call [Effect.Reset] to show the pixelated starting state
// right away.
func New(canvas Canvas, opts Options) (*Effect, error) {
	if canvas == nil {
		return nil, ErrNoSource
	}
	if opts.InitialGranularity <= 0 {
		opts.InitialGranularity = DefaultInitialGranularity
	}
	if opts.FinalGranularity <= 0 {
		opts.FinalGranularity = DefaultFinalGranularity
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewLoopScheduler(nil)
	}

	e := &Effect{
		opts:     opts,
		renderer: NewRenderer(canvas),
		sched:    opts.Scheduler,
	}
	if opts.AutoStart {
		e.Animate()
	}
	return e, nil
}

// Options returns a copy of the effect's options after defaulting.
func (e *Effect) Options() Options {
	return e.opts
}

// Canvas returns the canvas the effect renders into.
func (e *Effect) Canvas() Canvas {
	return e.renderer.Canvas()
}

// SetPixelation renders the source at the given granularity immediately,
// outside any animation. See [Renderer.SetPixelation].
func (e *Effect) SetPixelation(granularity float64) {
	e.renderer.SetPixelation(granularity)
}

// Animate starts the reveal: granularity interpolates from
// InitialGranularity to FinalGranularity over Duration, one render per
// scheduler frame. Any previous run is cancelled first.
//
// The returned channel closes exactly once: after the final render and the
// OnComplete callback on natural completion, or immediately when the run is
// stopped early (in which case OnComplete is not called).
func (e *Effect) Animate() <-chan struct{} {
	return e.start(e.opts.InitialGranularity, e.opts.FinalGranularity)
}

// AnimateReverse runs the transition with the endpoints swapped, dissolving
// the image back into blocks. The stored Options are not modified; the swap
// lives only in the run.
func (e *Effect) AnimateReverse() <-chan struct{} {
	return e.start(e.opts.FinalGranularity, e.opts.InitialGranularity)
}

func (e *Effect) start(from, to float64) <-chan struct{} {
	e.Stop()
	r := newRun(from, to, e.opts.Duration, e.opts.Delay, ResolveEasing(e.opts.Easing), e.opts.OnComplete)
	r.status = StatusDelaying
	e.run = r
	r.handle = e.sched.ScheduleFrame(func(now time.Duration) { e.tick(r, now) })
	return r.done
}

// tick is the per-frame step: check for a stale or ended run, advance,
// render, and either re-schedule or complete. Ticks never overlap; the
// scheduler delivers at most one callback per frame and tick runs to
// completion before returning control.
func (e *Effect) tick(r *run, now time.Duration) {
	if r != e.run || r.terminal() {
		return
	}
	granularity, finished := r.advance(now)
	e.renderer.SetPixelation(granularity)
	if !finished {
		r.handle = e.sched.ScheduleFrame(func(now time.Duration) { e.tick(r, now) })
		return
	}
	r.status = StatusCompleted
	if r.onComplete != nil {
		r.onComplete()
	}
	close(r.done)
}

// Stop cancels the active run: the pending frame is dropped, no further
// rendering happens, OnComplete is skipped, and the run's done channel
// closes. Synchronous and idempotent; a no-op when nothing is running.
func (e *Effect) Stop() {
	r := e.run
	if r == nil || r.terminal() {
		return
	}
	e.sched.CancelFrame(r.handle)
	r.status = StatusCancelled
	close(r.done)
}

// Clear stops any run and renders the source at full fidelity.
func (e *Effect) Clear() {
	e.Stop()
	e.renderer.SetPixelation(1)
}

// Reset stops any run and renders the fully pixelated starting state.
func (e *Effect) Reset() {
	e.Stop()
	e.renderer.SetPixelation(e.opts.InitialGranularity)
}

// Status returns the state of the current or most recent run, or StatusIdle
// if none was started.
func (e *Effect) Status() Status {
	if e.run == nil {
		return StatusIdle
	}
	return e.run.status
}

// IsRunning reports whether a run is active (delaying or running).
func (e *Effect) IsRunning() bool {
	s := e.Status()
	return s == StatusDelaying || s == StatusRunning
}

// Destroy stops any run and disposes the canvas. The effect must not be
// used afterwards.
func (e *Effect) Destroy() {
	e.Stop()
	e.renderer.Canvas().Dispose()
	e.run = nil
}
