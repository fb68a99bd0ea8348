package flow

// Step is one screen in the onboarding sequence. It is a closed sum type:
// the sealed method keeps the set of cases fixed to the six below, so a
// switch over the concrete types can be exhaustive.
//
// Steps are immutable once constructed; the ordered sequence of steps is
// fixed for the lifetime of one wizard run.
type Step interface {
	// StepID is the derived identity string used for lookup.
	StepID() string

	// Terminal reports whether the flow is finished after this step.
	Terminal() bool

	// Skippable reports whether this step may be skipped when the
	// configuration allows skipping.
	Skippable() bool

	sealed()
}

// WelcomeStep opens the flow. Title and Subtitle are optional overrides.
type WelcomeStep struct {
	Title    string
	Subtitle string
}

func (WelcomeStep) StepID() string { return "welcome" }
func (WelcomeStep) Terminal() bool { return false }
func (WelcomeStep) Skippable() bool { return false }
func (WelcomeStep) sealed() {}

// DisplayTitle returns the override title, or the fixed default.
func (s WelcomeStep) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return "Welcome!"
}

// DisplaySubtitle returns the override subtitle, or the fixed default.
func (s WelcomeStep) DisplaySubtitle() string {
	if s.Subtitle != "" {
		return s.Subtitle
	}
	return "Let's get you set up"
}

// PermissionStep asks the user for one capability.
type PermissionStep struct {
	Request PermissionRequest
}

func (s PermissionStep) StepID() string { return "permission-" + s.Request.ID }
func (PermissionStep) Terminal() bool { return false }
func (PermissionStep) Skippable() bool { return true }
func (PermissionStep) sealed() {}

// SummaryStep recaps the permission decisions made so far.
type SummaryStep struct{}

func (SummaryStep) StepID() string { return "summary" }
func (SummaryStep) Terminal() bool { return false }
func (SummaryStep) Skippable() bool { return false }
func (SummaryStep) sealed() {}

// ThankYouStep closes a successful flow. Title and Subtitle are optional
// overrides.
type ThankYouStep struct {
	Title    string
	Subtitle string
}

func (ThankYouStep) StepID() string { return "thankyou" }
func (ThankYouStep) Terminal() bool { return true }
func (ThankYouStep) Skippable() bool { return false }
func (ThankYouStep) sealed() {}

// DisplayTitle returns the override title, or the fixed default.
func (s ThankYouStep) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return "All Set!"
}

// DisplaySubtitle returns the override subtitle, or the fixed default.
func (s ThankYouStep) DisplaySubtitle() string {
	if s.Subtitle != "" {
		return s.Subtitle
	}
	return "You're ready to go"
}

// DeniedStep closes the flow when the user has declined every permission.
// Message is an optional override.
type DeniedStep struct {
	Message string
}

func (DeniedStep) StepID() string { return "denied" }
func (DeniedStep) Terminal() bool { return true }
func (DeniedStep) Skippable() bool { return false }
func (DeniedStep) sealed() {}

// DisplayMessage returns the override message, or the fixed default.
func (s DeniedStep) DisplayMessage() string {
	if s.Message != "" {
		return s.Message
	}
	return "No problem — you can change these anytime in Settings."
}

// CustomStep carries caller-supplied content, identified by ID.
type CustomStep struct {
	ID      string
	Title   string
	Content string
}

func (s CustomStep) StepID() string { return "custom-" + s.ID }
func (CustomStep) Terminal() bool { return false }
func (CustomStep) Skippable() bool { return true }
func (CustomStep) sealed() {}
