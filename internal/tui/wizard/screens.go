package wizard

import (
	"fmt"
	"strings"

	"github.com/druarnfield/hatch/internal/flow"
	"github.com/druarnfield/hatch/internal/tui/components"
)

// header renders the shared chrome: banner, optional progress bar, optional
// mascot with the given speech line.
func (m Model) header(mascotLine string) string {
	var b strings.Builder
	cfg := m.ctrl.Configuration()

	b.WriteString(components.RenderBanner(m.styles))
	b.WriteString("\n\n")

	if cfg.ShowProgressIndicator && cfg.StepCount() > 0 {
		pct := float64(m.ctrl.CurrentIndex()) / float64(cfg.StepCount())
		if pct > 1 {
			pct = 1
		}
		b.WriteString("  ")
		b.WriteString(m.bar.ViewAs(pct))
		b.WriteString(m.styles.Muted.Render(
			fmt.Sprintf("  %d/%d", min(m.ctrl.CurrentIndex()+1, cfg.StepCount()), cfg.StepCount()),
		))
		b.WriteString("\n\n")
	}

	if cfg.MascotEnabled {
		b.WriteString(components.RenderMascot(m.styles, mascotLine))
		b.WriteString("\n\n")
	}

	return b.String()
}

// transitionHint shows the spinner while a step change is in flight.
func (m Model) transitionHint() string {
	if !m.ctrl.Transitioning() {
		return ""
	}
	return "\n  " + m.spinner.View() + m.styles.Muted.Render(" …") + "\n"
}

func (m Model) viewWelcome(step flow.WelcomeStep) string {
	var b strings.Builder

	b.WriteString(m.header("Hi! I'm here to help."))
	b.WriteString(m.styles.Title.Render("  " + step.DisplayTitle()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Body.Render("  " + step.DisplaySubtitle()))
	b.WriteString("\n")
	b.WriteString(m.transitionHint())
	b.WriteString("\n")
	b.WriteString(components.Keyline(m.styles, "enter", "get started", "q", "quit"))

	return b.String()
}

func (m Model) viewCustom(step flow.CustomStep) string {
	var b strings.Builder

	b.WriteString(m.header(""))
	b.WriteString(m.styles.Title.Render("  " + step.Title))
	b.WriteString("\n\n")
	for _, line := range strings.Split(step.Content, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString(m.transitionHint())
	b.WriteString("\n")
	if m.ctrl.Configuration().AllowSkipping {
		b.WriteString(components.Keyline(m.styles, "enter", "continue", "s", "skip", "q", "quit"))
	} else {
		b.WriteString(components.Keyline(m.styles, "enter", "continue", "q", "quit"))
	}

	return b.String()
}

func (m Model) viewThankYou(step flow.ThankYouStep) string {
	var b strings.Builder

	b.WriteString(m.header("You did it!"))
	b.WriteString(m.styles.Success.Render("  " + step.DisplayTitle()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Body.Render("  " + step.DisplaySubtitle()))
	b.WriteString("\n\n")
	b.WriteString(components.Keyline(m.styles, "enter", "finish"))

	return b.String()
}

func (m Model) viewDenied(step flow.DeniedStep) string {
	var b strings.Builder

	b.WriteString(m.header("That's okay."))
	b.WriteString(m.styles.Warning.Render("  " + step.DisplayMessage()))
	b.WriteString("\n\n")
	b.WriteString(components.Keyline(m.styles, "r", "start over", "enter", "finish"))

	return b.String()
}
