package flow

import (
	"log/slog"
	"time"
)

// Transition timing. The exit delay lets the outgoing step's animation play
// before content swaps; the enter delay covers the incoming animation before
// further advances are accepted. The decision delay gives the user a moment
// to see the result of a permission choice before moving on.
const (
	stepExitDelay  = 300 * time.Millisecond
	stepEnterDelay = 300 * time.Millisecond
	decisionDelay  = 600 * time.Millisecond
)

// CompletionFunc receives the final permission list when the flow completes.
type CompletionFunc func(permissions []PermissionRequest)

// Controller owns one wizard run: the current position in the step sequence,
// the working permission list, and the transition rules between steps.
//
// A Controller is single-owner: all methods, and all callbacks delivered by
// its Scheduler, must run on one goroutine. Mutations are serialized by that
// ownership and by the transitioning guard, never by locks.
type Controller struct {
	cfg    Configuration
	logger *slog.Logger
	sched  Scheduler

	index         int
	permissions   []*PermissionRequest
	transitioning bool

	onCompletion CompletionFunc
	observers    map[int]func()
	nextObserver int
}

// NewController creates a Controller positioned on the first step. The
// working permission list is projected once from the configuration's
// Permission steps, in order; it lives for the flow's duration and is reused
// across resets.
func NewController(cfg Configuration, logger *slog.Logger) *Controller {
	c := &Controller{
		cfg:       cfg,
		logger:    logger,
		sched:     TimerScheduler{},
		observers: make(map[int]func()),
	}
	for _, s := range cfg.steps {
		if ps, ok := s.(PermissionStep); ok {
			req := ps.Request
			c.permissions = append(c.permissions, &req)
		}
	}
	return c
}

// SetScheduler replaces the scheduler used for delayed transitions. Pass a
// fake in tests, or a UI-loop scheduler in a rendering layer.
func (c *Controller) SetScheduler(s Scheduler) {
	c.sched = s
}

// SetOnCompletion registers the callback invoked by Complete. Pass nil to
// clear.
func (c *Controller) SetOnCompletion(fn CompletionFunc) {
	c.onCompletion = fn
}

// Subscribe registers an observer notified after every state mutation. The
// returned function unsubscribes it.
func (c *Controller) Subscribe(fn func()) (unsubscribe func()) {
	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Controller) notify() {
	for _, fn := range c.observers {
		fn()
	}
}

// Configuration returns the configuration this controller was built with.
func (c *Controller) Configuration() Configuration {
	return c.cfg
}

// CurrentIndex returns the current step index. It ranges over
// [0, StepCount()]; StepCount() itself is the implicit terminal fallback.
func (c *Controller) CurrentIndex() int {
	return c.index
}

// Transitioning reports whether a step transition is in flight.
func (c *Controller) Transitioning() bool {
	return c.transitioning
}

// CurrentStep returns the step at the current index. Past the end of the
// sequence it returns a synthetic ThankYouStep with no overrides, so the flow
// never renders an invalid state even if Advance is called past the last
// step.
func (c *Controller) CurrentStep() Step {
	if s, ok := c.cfg.StepAt(c.index); ok {
		return s
	}
	return ThankYouStep{}
}

// Permissions returns a snapshot copy of the working permission list, in
// configuration order.
func (c *Controller) Permissions() []PermissionRequest {
	out := make([]PermissionRequest, len(c.permissions))
	for i, p := range c.permissions {
		out[i] = *p
	}
	return out
}

// Permission returns the current value of the request with the given id.
func (c *Controller) Permission(id string) (PermissionRequest, bool) {
	if p := c.find(id); p != nil {
		return *p, true
	}
	return PermissionRequest{}, false
}

func (c *Controller) find(id string) *PermissionRequest {
	for _, p := range c.permissions {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Advance moves to the next step through a two-phase delayed transition:
// after the exit delay the index increments, and after the enter delay the
// transition window closes. Calls arriving while a transition is in flight
// are dropped, not queued.
func (c *Controller) Advance() {
	if c.transitioning {
		c.logger.Debug("advance dropped, transition in flight",
			slog.Int("index", c.index),
		)
		return
	}
	c.transitioning = true
	c.notify()

	c.sched.AfterFunc(c.delay(stepExitDelay), func() {
		// The index is bounded by [0, StepCount()]; StepCount() itself is the
		// terminal fallback position.
		if c.index < c.cfg.StepCount() {
			c.index++
		}
		c.logger.Debug("advanced",
			slog.Int("index", c.index),
			slog.String("step", c.CurrentStep().StepID()),
		)
		c.notify()
		c.sched.AfterFunc(c.delay(stepEnterDelay), func() {
			c.transitioning = false
			c.notify()
		})
	})
}

// Approve marks the request with the given id approved and schedules an
// advance, leaving the success state on screen for a moment first. Unknown
// ids are a silent no-op.
func (c *Controller) Approve(id string) {
	req := c.find(id)
	if req == nil {
		return
	}
	req.State = StateApproved
	c.logger.Info("permission approved",
		slog.String("id", id),
		slog.String("type", req.Type.String()),
	)
	c.notify()
	c.sched.AfterFunc(c.delay(decisionDelay), c.Advance)
}

// Deny marks the request with the given id denied. When every permission in
// the working list is now denied and the configuration contains a Denied
// step, the flow jumps there after the decision delay; otherwise it advances
// normally. Unknown ids are a silent no-op.
func (c *Controller) Deny(id string) {
	req := c.find(id)
	if req == nil {
		return
	}
	req.State = StateDenied
	c.logger.Info("permission denied",
		slog.String("id", id),
		slog.String("type", req.Type.String()),
	)
	c.notify()

	if c.AllDenied() && c.deniedIndex() >= 0 {
		c.sched.AfterFunc(c.delay(decisionDelay), c.JumpToDeniedStep)
		return
	}
	c.sched.AfterFunc(c.delay(decisionDelay), c.Advance)
}

// AllDenied reports whether every permission in the working list is denied.
// It is a pure fold over current states, recomputed on every call: a single
// approval anywhere keeps it false no matter how many denials follow.
// Vacuously true for configurations with no Permission steps; unreachable
// through Deny in that case since there is nothing to deny.
func (c *Controller) AllDenied() bool {
	for _, p := range c.permissions {
		if p.State != StateDenied {
			return false
		}
	}
	return true
}

// deniedIndex returns the index of the first Denied step, or -1.
func (c *Controller) deniedIndex() int {
	for i, s := range c.cfg.steps {
		if _, ok := s.(DeniedStep); ok {
			return i
		}
	}
	return -1
}

// JumpToDeniedStep moves directly to the first Denied step in the sequence.
// No-op when the configuration has none.
func (c *Controller) JumpToDeniedStep() {
	i := c.deniedIndex()
	if i < 0 {
		return
	}
	c.index = i
	c.logger.Info("jumped to denied step", slog.Int("index", i))
	c.notify()
}

// Reset rewinds to the first step and puts every permission back to
// Requesting, reusing the same request identities. It does not touch the
// transitioning flag; callers must not reset mid-transition.
func (c *Controller) Reset() {
	c.index = 0
	for _, p := range c.permissions {
		p.State = StateRequesting
	}
	c.logger.Info("wizard reset")
	c.notify()
}

// Complete hands the final permission list to the completion callback. Pure
// notification: no state changes. Callers invoke it exactly once, at the
// terminal continue action.
func (c *Controller) Complete() {
	c.logger.Info("wizard completed",
		slog.Int("permissions", len(c.permissions)),
	)
	if c.onCompletion != nil {
		c.onCompletion(c.Permissions())
	}
}

// delay collapses to zero when animations are disabled; transitions still go
// through both phases.
func (c *Controller) delay(d time.Duration) time.Duration {
	if !c.cfg.AnimationsEnabled {
		return 0
	}
	return d
}
