package flow

import "time"

// Scheduler defers a callback by a delay. The Controller schedules its step
// transitions through this interface so callers can substitute a virtual
// clock in tests, or route callbacks onto a UI event loop.
//
// Callbacks must be delivered on the same goroutine that invokes Controller
// methods; the Controller does no locking of its own. Scheduled callbacks are
// fire-and-forget: nothing cancels them, and they apply their effect on top
// of whatever state exists when the delay elapses.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler runs callbacks on real timers. Callbacks fire on a timer
// goroutine, so callers using it directly must serialize all controller
// access themselves (the TUI does this by pumping callbacks through its
// update loop).
type TimerScheduler struct{}

// AfterFunc schedules fn after d using the runtime timer.
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
