package wizard

import (
	"strings"

	"github.com/druarnfield/hatch/internal/flow"
	"github.com/druarnfield/hatch/internal/tui/components"
)

func (m Model) viewPermission(step flow.PermissionStep) string {
	var b strings.Builder

	// Pull the live request: the step embeds the configured value, but state
	// lives in the controller's working list.
	req, ok := m.ctrl.Permission(step.Request.ID)
	if !ok {
		req = step.Request
	}

	b.WriteString(m.header("May I ask you something?"))

	glyph := components.PermissionGlyph(req.Type.String())
	b.WriteString(m.styles.Title.Render("  " + glyph + " " + req.DisplayTitle()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Body.Render("  " + req.DisplayDescription()))
	b.WriteString("\n\n")

	switch req.State {
	case flow.StateApproved:
		b.WriteString(m.styles.Success.Render("  " + m.styles.StatusApproved + " Approved"))
		b.WriteString("\n")
	case flow.StateDenied:
		b.WriteString(m.styles.Warning.Render("  " + m.styles.StatusDenied + " Not now"))
		b.WriteString("\n")
	default:
		if m.ctrl.Configuration().AllowSkipping {
			b.WriteString(components.Keyline(m.styles, "y", "allow", "n", "not now", "s", "skip", "q", "quit"))
		} else {
			b.WriteString(components.Keyline(m.styles, "y", "allow", "n", "not now", "q", "quit"))
		}
	}

	b.WriteString(m.transitionHint())

	return b.String()
}
