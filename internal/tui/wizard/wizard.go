// Package wizard renders an onboarding flow.Controller as a bubbletea
// program: one screen per step case, with the controller as the single
// source of truth pulled on every render.
package wizard

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/druarnfield/hatch/internal/flow"
	"github.com/druarnfield/hatch/internal/tui/components"
)

// Model is the top-level tea.Model for one wizard run.
type Model struct {
	styles  components.Styles
	ctrl    *flow.Controller
	bridge  *Bridge
	spinner spinner.Model
	bar     progress.Model

	onDismiss func()
	completed bool
	quitting  bool
	width     int
	height    int
}

// New wires a Model to the controller. The controller's scheduler is replaced
// with the model's Bridge so delayed transitions run inside the update loop.
func New(ctrl *flow.Controller, styles components.Styles) Model {
	bridge := NewBridge()
	ctrl.SetScheduler(bridge)

	bar := progress.New(progress.WithSolidFill(styles.AccentColor.Dark))
	bar.Width = 30

	return Model{
		styles:  styles,
		ctrl:    ctrl,
		bridge:  bridge,
		spinner: components.NewSpinner(styles),
		bar:     bar,
	}
}

// WithOnDismiss sets the callback invoked when the user quits without
// completing the flow. The controller never calls this; it is purely a
// presentation-layer escape hatch.
func (m Model) WithOnDismiss(fn func()) Model {
	m.onDismiss = fn
	return m
}

// Completed reports whether the flow reached a terminal continue action.
func (m Model) Completed() bool {
	return m.completed
}

// Permissions returns the controller's current permission snapshot.
func (m Model) Permissions() []flow.PermissionRequest {
	return m.ctrl.Permissions()
}

// Init starts the spinner and arms the bridge.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bridge.NextMsg())
}

// Update handles key events and bridge callbacks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 8; w > 0 && w < 40 {
			m.bar.Width = w
		}
		return m, nil

	case CallbackMsg:
		msg.Fn()
		return m, m.bridge.NextMsg()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || msg.String() == "q" {
		return m.dismiss()
	}

	allowSkipping := m.ctrl.Configuration().AllowSkipping

	switch step := m.ctrl.CurrentStep().(type) {
	case flow.WelcomeStep:
		if isContinueKey(msg) {
			m.ctrl.Advance()
		}

	case flow.PermissionStep:
		req, ok := m.ctrl.Permission(step.Request.ID)
		if !ok || req.State != flow.StateRequesting {
			break // decision made, waiting on the scheduled advance
		}
		switch msg.String() {
		case "y", "enter":
			m.ctrl.Approve(step.Request.ID)
		case "n":
			m.ctrl.Deny(step.Request.ID)
		case "s":
			if allowSkipping {
				m.ctrl.Advance()
			}
		}

	case flow.SummaryStep:
		if isContinueKey(msg) {
			m.ctrl.Advance()
		}

	case flow.CustomStep:
		if isContinueKey(msg) {
			m.ctrl.Advance()
		} else if msg.String() == "s" && allowSkipping {
			m.ctrl.Advance()
		}

	case flow.ThankYouStep:
		if isContinueKey(msg) {
			return m.finish()
		}

	case flow.DeniedStep:
		switch msg.String() {
		case "r":
			m.ctrl.Reset()
		case "enter":
			return m.finish()
		}
	}

	return m, nil
}

func isContinueKey(msg tea.KeyMsg) bool {
	return msg.String() == "enter" || msg.String() == " "
}

// finish fires the completion callback exactly once, at the terminal
// continue action, then quits.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.ctrl.Complete()
	m.completed = true
	m.quitting = true
	m.bridge.Close()
	return m, tea.Quit
}

// dismiss is the abandon path: no completion event, optional OnDismiss.
func (m Model) dismiss() (tea.Model, tea.Cmd) {
	if m.onDismiss != nil && !m.completed {
		m.onDismiss()
	}
	m.quitting = true
	m.bridge.Close()
	return m, tea.Quit
}

// View renders the screen for the current step.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch step := m.ctrl.CurrentStep().(type) {
	case flow.WelcomeStep:
		return m.viewWelcome(step)
	case flow.PermissionStep:
		return m.viewPermission(step)
	case flow.SummaryStep:
		return m.viewSummary()
	case flow.ThankYouStep:
		return m.viewThankYou(step)
	case flow.DeniedStep:
		return m.viewDenied(step)
	case flow.CustomStep:
		return m.viewCustom(step)
	}
	return ""
}
