package components

import "testing"

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	if s.StatusApproved == "" {
		t.Error("StatusApproved is empty")
	}
	if s.StatusDenied == "" {
		t.Error("StatusDenied is empty")
	}
	if s.StatusPending == "" {
		t.Error("StatusPending is empty")
	}
}

func TestRenderBanner(t *testing.T) {
	s := DefaultStyles()
	out := RenderBanner(s)
	if out == "" {
		t.Error("RenderBanner returned empty string")
	}
	if len(out) < 50 {
		t.Error("RenderBanner output seems too short")
	}
}

func TestRenderMascot(t *testing.T) {
	s := DefaultStyles()

	plain := RenderMascot(s, "")
	if plain == "" {
		t.Error("mascot without a line should still render")
	}

	withBubble := RenderMascot(s, "Hi there!")
	if len(withBubble) <= len(plain) {
		t.Error("speech bubble should add to the output")
	}
}

func TestPermissionGlyph(t *testing.T) {
	if PermissionGlyph("camera") == "" {
		t.Error("camera glyph is empty")
	}
	if PermissionGlyph("anything-else") != "·" {
		t.Error("unknown types should get the generic glyph")
	}
}

func TestNewSpinner(t *testing.T) {
	s := DefaultStyles()
	sp := NewSpinner(s)
	// Spinner should produce a non-empty frame.
	if sp.View() == "" {
		t.Error("spinner View() is empty")
	}
}
