package flow

import (
	"log/slog"
	"testing"
	"time"

	"github.com/druarnfield/hatch/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler queues callbacks instead of arming timers, so tests advance
// virtual time by draining the queue. Callbacks run in the order scheduled,
// matching the single-queue ordering guarantee of the real thing.
type fakeScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, fn)
	s.delays = append(s.delays, d)
}

// runNext fires the oldest outstanding callback. Returns false when idle.
func (s *fakeScheduler) runNext() bool {
	if len(s.pending) == 0 {
		return false
	}
	fn := s.pending[0]
	s.pending = s.pending[1:]
	fn()
	return true
}

// drain fires callbacks until none remain, including ones scheduled by
// earlier callbacks.
func (s *fakeScheduler) drain() {
	for s.runNext() {
	}
}

func nopLogger() *slog.Logger {
	return slog.New(logging.NopHandler{})
}

func newTestController(cfg Configuration) (*Controller, *fakeScheduler) {
	c := NewController(cfg, nopLogger())
	sched := &fakeScheduler{}
	c.SetScheduler(sched)
	return c, sched
}

// advanceToCompletion runs one full advance cycle: the call plus both delay
// phases.
func advanceToCompletion(c *Controller, sched *fakeScheduler) {
	c.Advance()
	sched.drain()
}

func permissionConfig() Configuration {
	return NewConfiguration(
		WelcomeStep{},
		PermissionStep{Request: NewPermissionRequest("camera", PermissionCamera)},
		PermissionStep{Request: NewPermissionRequest("location", PermissionLocation)},
		SummaryStep{},
		DeniedStep{},
		ThankYouStep{},
	)
}

func TestController_ProjectsPermissionsInOrder(t *testing.T) {
	c, _ := newTestController(permissionConfig())

	perms := c.Permissions()
	require.Len(t, perms, 2)
	assert.Equal(t, "camera", perms[0].ID)
	assert.Equal(t, "location", perms[1].ID)
	assert.Equal(t, StateRequesting, perms[0].State)
	assert.Equal(t, StateRequesting, perms[1].State)
	assert.Equal(t, 0, c.CurrentIndex())
	assert.False(t, c.Transitioning())
}

func TestController_MonotonicAdvance(t *testing.T) {
	cfg := DefaultConfiguration()
	c, sched := newTestController(cfg)

	for want := 1; want <= cfg.StepCount(); want++ {
		advanceToCompletion(c, sched)
		assert.Equal(t, want, c.CurrentIndex())
		assert.False(t, c.Transitioning())
	}

	// Past the end the synthetic thank-you is stable and the index stays
	// pinned at StepCount.
	for i := 0; i < 3; i++ {
		step, ok := c.CurrentStep().(ThankYouStep)
		require.True(t, ok, "expected synthetic thank-you past the end")
		assert.Equal(t, "All Set!", step.DisplayTitle())
		advanceToCompletion(c, sched)
		assert.Equal(t, cfg.StepCount(), c.CurrentIndex())
	}
}

func TestController_ReentrantAdvanceDropped(t *testing.T) {
	c, sched := newTestController(DefaultConfiguration())

	c.Advance()
	// Still waiting on the exit delay.
	c.Advance()
	c.Advance()
	sched.drain()

	assert.Equal(t, 1, c.CurrentIndex(), "exactly one increment per transition cycle")
	assert.False(t, c.Transitioning())

	// A call landing between the index swap and the enter delay is dropped too.
	c.Advance()
	require.True(t, sched.runNext()) // exit delay: index now 2, still transitioning
	assert.Equal(t, 2, c.CurrentIndex())
	assert.True(t, c.Transitioning())
	c.Advance()
	sched.drain()
	assert.Equal(t, 2, c.CurrentIndex())
}

func TestController_DenialFold_ApprovalBlocksDeniedRoute(t *testing.T) {
	c, sched := newTestController(permissionConfig())

	c.Deny("camera")
	sched.drain()
	c.Approve("location")
	sched.drain()

	_, isDenied := c.CurrentStep().(DeniedStep)
	assert.False(t, isDenied, "an approval anywhere must block the denied route")
	assert.False(t, c.AllDenied())
}

func TestController_DenialFold_AllDeniedRoutesToDeniedStep(t *testing.T) {
	c, sched := newTestController(permissionConfig())

	c.Deny("camera")
	sched.drain()
	assert.False(t, c.AllDenied(), "location is still pending")

	c.Deny("location")
	sched.drain()

	require.True(t, c.AllDenied())
	step, ok := c.CurrentStep().(DeniedStep)
	require.True(t, ok, "expected the denied step, got %T", c.CurrentStep())
	assert.Equal(t, "denied", step.StepID())
}

func TestController_AllDeniedWithoutDeniedStepAdvances(t *testing.T) {
	// Default preset has no Denied step: denying all three must land on the
	// step immediately following the last permission step.
	c, sched := newTestController(DefaultConfiguration())

	advanceToCompletion(c, sched) // welcome → camera
	for _, id := range []string{"camera", "location", "notifications"} {
		c.Deny(id)
		sched.drain()
	}

	require.True(t, c.AllDenied())
	_, isSummary := c.CurrentStep().(SummaryStep)
	assert.True(t, isSummary, "expected summary, got %T", c.CurrentStep())
}

func TestController_ResetRewindsEverything(t *testing.T) {
	c, sched := newTestController(permissionConfig())

	advanceToCompletion(c, sched)
	c.Approve("camera")
	sched.drain()
	c.Deny("location")
	sched.drain()

	c.Reset()

	assert.Equal(t, 0, c.CurrentIndex())
	_, isWelcome := c.CurrentStep().(WelcomeStep)
	assert.True(t, isWelcome)
	for _, p := range c.Permissions() {
		assert.Equal(t, StateRequesting, p.State, "permission %s", p.ID)
	}
}

func TestController_UnknownIDIsNoOp(t *testing.T) {
	c, sched := newTestController(permissionConfig())
	before := c.Permissions()

	c.Approve("no-such-id")
	c.Deny("no-such-id")

	assert.Empty(t, sched.pending, "no transition may be scheduled for a miss")
	assert.Equal(t, 0, c.CurrentIndex())
	assert.False(t, c.Transitioning())
	assert.Equal(t, before, c.Permissions())
}

func TestController_MinimalScenario(t *testing.T) {
	c, sched := newTestController(MinimalConfiguration())

	advanceToCompletion(c, sched)

	step, ok := c.CurrentStep().(ThankYouStep)
	require.True(t, ok)
	assert.Equal(t, "All Set!", step.DisplayTitle())
	assert.Equal(t, "You're ready to go", step.DisplaySubtitle())
}

func TestController_CompleteEmitsSnapshot(t *testing.T) {
	c, sched := newTestController(permissionConfig())
	c.Approve("camera")
	sched.drain()

	var got []PermissionRequest
	calls := 0
	c.SetOnCompletion(func(perms []PermissionRequest) {
		got = perms
		calls++
	})

	c.Complete()

	require.Equal(t, 1, calls)
	require.Len(t, got, 2)
	assert.Equal(t, StateApproved, got[0].State)
	assert.Equal(t, StateRequesting, got[1].State)

	// The snapshot is a copy; mutating it must not reach the controller.
	got[1].State = StateDenied
	p, ok := c.Permission("location")
	require.True(t, ok)
	assert.Equal(t, StateRequesting, p.State)
}

func TestController_ObserversNotifiedAndUnsubscribe(t *testing.T) {
	c, sched := newTestController(MinimalConfiguration())

	notified := 0
	unsubscribe := c.Subscribe(func() { notified++ })

	advanceToCompletion(c, sched)
	// One per mutation: transitioning on, index bump, transitioning off.
	assert.Equal(t, 3, notified)

	unsubscribe()
	c.Reset()
	assert.Equal(t, 3, notified, "unsubscribed observer must not fire")
}

func TestController_StaleCallbackFiresAfterReset(t *testing.T) {
	// Scheduled effects fire regardless: a reset while an advance is
	// outstanding does not cancel it.
	c, sched := newTestController(DefaultConfiguration())

	c.Advance()
	c.Reset()
	sched.drain()

	assert.Equal(t, 1, c.CurrentIndex(), "stale advance applies on top of the reset")
	assert.False(t, c.Transitioning())
}

func TestController_AllDeniedVacuousWithoutPermissions(t *testing.T) {
	// Defensive-only branch: no Permission steps means nothing to deny, but
	// the fold itself is vacuously true.
	c, _ := newTestController(MinimalConfiguration())
	assert.True(t, c.AllDenied())
}

func TestController_AnimationsDisabledCollapsesDelays(t *testing.T) {
	cfg := MinimalConfiguration()
	cfg.AnimationsEnabled = false
	c, sched := newTestController(cfg)

	advanceToCompletion(c, sched)

	require.Len(t, sched.delays, 2, "both transition phases still occur")
	for _, d := range sched.delays {
		assert.Equal(t, time.Duration(0), d)
	}
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestController_ApproveSchedulesAdvance(t *testing.T) {
	c, sched := newTestController(permissionConfig())
	advanceToCompletion(c, sched) // onto the camera step

	c.Approve("camera")
	p, ok := c.Permission("camera")
	require.True(t, ok)
	assert.Equal(t, StateApproved, p.State)
	assert.Equal(t, 1, c.CurrentIndex(), "advance waits for the decision delay")

	sched.drain()
	assert.Equal(t, 2, c.CurrentIndex())
}
