package depixel

import "time"

// FrameHandle identifies a scheduled frame callback so it can be cancelled
// before it fires. The zero value is never returned by ScheduleFrame.
type FrameHandle int64

// Scheduler delivers callbacks aligned to display refresh: one scheduled
// callback fires at most once, on the next frame, with a monotonic
// timestamp. The animation driver schedules exactly one callback per frame
// and re-schedules from inside it.
//
// Implementations must deliver callbacks on the caller's goroutine (or
// another single, consistent goroutine) so ticks of one effect never
// overlap.
type Scheduler interface {
	// ScheduleFrame registers fn to be invoked once on the next frame with
	// the current monotonic timestamp.
	ScheduleFrame(fn func(now time.Duration)) FrameHandle

	// CancelFrame drops a pending callback. Cancelling a handle that has
	// already fired or been cancelled is a no-op.
	CancelFrame(h FrameHandle)
}

// Clock reports monotonic time in the same units the Scheduler passes to
// frame callbacks.
type Clock interface {
	Now() time.Duration
}

// systemClock measures monotonic time since its creation.
type systemClock struct {
	epoch time.Time
}

// NewClock returns a monotonic Clock whose epoch is the moment of the call.
func NewClock() Clock {
	return &systemClock{epoch: time.Now()}
}

func (c *systemClock) Now() time.Duration {
	return time.Since(c.epoch)
}

// LoopScheduler is a Scheduler pumped from an existing frame loop. Call
// [LoopScheduler.Tick] once per display frame (for Ebitengine, from your
// game's Update); every callback scheduled before that Tick fires during it,
// in scheduling order. Callbacks scheduled while Tick runs (the driver
// re-scheduling itself) fire on the next Tick, so an effect advances once
// per frame.
type LoopScheduler struct {
	clock   Clock
	next    FrameHandle
	pending []scheduledFrame
	// scratch buffer reused across Ticks to avoid per-frame allocation
	firing []scheduledFrame
}

type scheduledFrame struct {
	handle FrameHandle
	fn     func(now time.Duration)
}

// NewLoopScheduler creates a LoopScheduler. A nil clock uses [NewClock].
func NewLoopScheduler(clock Clock) *LoopScheduler {
	if clock == nil {
		clock = NewClock()
	}
	return &LoopScheduler{clock: clock}
}

// ScheduleFrame implements Scheduler.
func (s *LoopScheduler) ScheduleFrame(fn func(now time.Duration)) FrameHandle {
	s.next++
	s.pending = append(s.pending, scheduledFrame{handle: s.next, fn: fn})
	return s.next
}

// CancelFrame implements Scheduler.
func (s *LoopScheduler) CancelFrame(h FrameHandle) {
	for i, f := range s.pending {
		if f.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Tick fires all callbacks scheduled before this call, passing each the same
// timestamp. Returns the number of callbacks fired.
func (s *LoopScheduler) Tick() int {
	if len(s.pending) == 0 {
		return 0
	}
	// Swap out the pending list so callbacks that re-schedule land in the
	// next frame's batch.
	s.firing, s.pending = s.pending, s.firing[:0]
	now := s.clock.Now()
	for _, f := range s.firing {
		f.fn(now)
	}
	fired := len(s.firing)
	s.firing = s.firing[:0]
	return fired
}

// Pending reports how many callbacks are waiting for the next Tick.
func (s *LoopScheduler) Pending() int {
	return len(s.pending)
}
