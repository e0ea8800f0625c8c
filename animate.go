package depixel

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Status is the state of an animation run.
//
// The happy path is Idle → Delaying → Running → Completed; Stop moves any
// non-terminal state to Cancelled. Completed and Cancelled are terminal per
// run — a new Animate call starts a fresh run from Idle.
type Status uint8

const (
	StatusIdle      Status = iota // no run has been started
	StatusDelaying                // scheduled, holding the initial look until the delay passes
	StatusRunning                 // ticking between progress 0 and 1
	StatusCompleted               // reached progress 1
	StatusCancelled               // stopped before completion
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusDelaying:
		return "delaying"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// run is one animation: a granularity tween plus the scheduling state for a
// single Animate or AnimateReverse call. Runs are single-use; the endpoints
// are snapshotted at creation so the effect's Options are never touched.
type run struct {
	tween *gween.Tween
	from  float64
	delay time.Duration

	start   time.Duration // timestamp of the first tick; valid once started
	started bool
	status  Status
	handle  FrameHandle

	done       chan struct{}
	onComplete func()
}

func newRun(from, to float64, duration, delay time.Duration, fn ease.TweenFunc, onComplete func()) *run {
	return &run{
		tween:      gween.New(float32(from), float32(to), float32(duration.Seconds()), fn),
		from:       from,
		delay:      delay,
		done:       make(chan struct{}),
		onComplete: onComplete,
	}
}

// advance maps a tick timestamp to the granularity to render and reports
// whether the run has reached its endpoint. It is a pure step function with
// respect to scheduling: the caller decides whether to render and whether to
// schedule another tick.
//
// The run's clock starts at the first tick, not at scheduling time. While
// elapsed time is still inside the delay window the run holds the starting
// granularity. Past the delay, progress is elapsed/duration clamped to 1 and
// the tween maps the eased progress onto the granularity range, landing on
// the final granularity exactly at progress 1.
func (r *run) advance(now time.Duration) (granularity float64, finished bool) {
	if !r.started {
		r.start = now
		r.started = true
	}
	elapsed := now - r.start - r.delay
	if elapsed < 0 {
		r.status = StatusDelaying
		return r.from, false
	}
	r.status = StatusRunning
	v, finished := r.tween.Set(float32(elapsed.Seconds()))
	return float64(v), finished
}

// terminal reports whether the run has ended, by completion or cancellation.
func (r *run) terminal() bool {
	return r.status == StatusCompleted || r.status == StatusCancelled
}
