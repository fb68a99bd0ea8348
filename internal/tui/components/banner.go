package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `  _           _       _
 | |__   __ _| |_ ___| |__
 | '_ \ / _` + "`" + ` | __/ __| '_ \
 | | | | (_| | || (__| | | |
 |_| |_|\__,_|\__\___|_| |_|`

// RenderBanner renders the hatch wordmark in the accent color.
func RenderBanner(styles Styles) string {
	return lipgloss.NewStyle().
		Foreground(styles.AccentColor).
		Render(bannerArt)
}

// mascotArt is the hatching-chick mascot shown next to step copy when the
// configuration enables it.
const mascotArt = ` (o<
 //\
 V_/_`

// RenderMascot draws the mascot with a speech bubble containing the given
// line. An empty line renders the mascot alone.
func RenderMascot(styles Styles, line string) string {
	mascot := lipgloss.NewStyle().
		Foreground(styles.AccentColor).
		Render(mascotArt)

	if line == "" {
		return mascot
	}

	bubble := styles.Panel.Render(line)
	return lipgloss.JoinHorizontal(lipgloss.Center, mascot, " ", bubble)
}

// PermissionGlyph returns a small marker for a permission type name. Purely
// decorative; unknown names get a generic dot.
func PermissionGlyph(typeName string) string {
	switch typeName {
	case "camera", "photos":
		return "▣"
	case "location":
		return "➤"
	case "notifications", "reminders":
		return "♪"
	case "microphone":
		return "●"
	case "contacts", "calendar":
		return "▤"
	case "faceid", "touchid":
		return "◉"
	default:
		return "·"
	}
}

// Keyline formats a footer hint like "enter: continue  n: not now".
func Keyline(styles Styles, pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(pairs[i])
		b.WriteString(": ")
		b.WriteString(pairs[i+1])
	}
	return styles.Footer.Render("  " + b.String())
}
