package flow

// Configuration describes one wizard run: the ordered step sequence plus
// presentation capability flags. The step sequence is cloned on construction
// and only ever handed out by copy, so a Configuration is immutable for the
// lifetime of a flow.
//
// AllowSkipping is a read-only capability flag consumed by the presentation
// layer; the Controller never checks it.
type Configuration struct {
	steps []Step

	AllowSkipping         bool
	ShowProgressIndicator bool
	MascotEnabled         bool
	AnimationsEnabled     bool
}

// NewConfiguration builds a Configuration over the given steps. Progress
// indicator, mascot, and animations default to on; skipping defaults to off.
func NewConfiguration(steps ...Step) Configuration {
	return Configuration{
		steps:                 append([]Step(nil), steps...),
		ShowProgressIndicator: true,
		MascotEnabled:         true,
		AnimationsEnabled:     true,
	}
}

// Steps returns a copy of the ordered step sequence.
func (c Configuration) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// StepCount returns the number of steps in the sequence.
func (c Configuration) StepCount() int {
	return len(c.steps)
}

// StepAt returns the step at index i, or (nil, false) when out of range.
func (c Configuration) StepAt(i int) (Step, bool) {
	if i < 0 || i >= len(c.steps) {
		return nil, false
	}
	return c.steps[i], true
}

// DefaultConfiguration is the standard preset: welcome, camera, location and
// notifications permissions, summary, thank-you.
func DefaultConfiguration() Configuration {
	return NewConfiguration(
		WelcomeStep{},
		PermissionStep{Request: NewPermissionRequest("camera", PermissionCamera)},
		PermissionStep{Request: NewPermissionRequest("location", PermissionLocation)},
		PermissionStep{Request: NewPermissionRequest("notifications", PermissionNotifications)},
		SummaryStep{},
		ThankYouStep{},
	)
}

// MinimalConfiguration is the smallest useful preset: welcome then thank-you.
func MinimalConfiguration() Configuration {
	return NewConfiguration(
		WelcomeStep{},
		ThankYouStep{},
	)
}
