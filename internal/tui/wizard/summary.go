package wizard

import (
	"strings"

	"github.com/druarnfield/hatch/internal/flow"
	"github.com/druarnfield/hatch/internal/tui/components"
)

func (m Model) viewSummary() string {
	var b strings.Builder

	b.WriteString(m.header("Here's where we landed."))
	b.WriteString(m.styles.Title.Render("  Summary"))
	b.WriteString("\n\n")

	for _, req := range m.ctrl.Permissions() {
		icon := m.styles.StatusPending
		line := "  " + icon + " " + req.DisplayTitle()

		switch req.State {
		case flow.StateApproved:
			line = m.styles.Success.Render("  " + m.styles.StatusApproved + " " + req.DisplayTitle())
		case flow.StateDenied:
			line = m.styles.Muted.Render("  " + m.styles.StatusDenied + " " + req.DisplayTitle())
		default:
			line = m.styles.Muted.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.transitionHint())
	b.WriteString("\n")
	b.WriteString(components.Keyline(m.styles, "enter", "continue", "q", "quit"))

	return b.String()
}
