package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/druarnfield/hatch/internal/flow"
)

func TestLoadFromFile(t *testing.T) {
	content := `
[wizard]
allow_skipping = true
show_progress = true
mascot = false
animations = true

[[steps]]
type = "welcome"
title = "Hey there"
subtitle = "Two minutes, tops"

[[steps]]
type = "permission"
id = "cam-main"
permission = "camera"
title = "Let us see"
description = "For scanning receipts."

[[steps]]
type = "permission"
permission = "notifications"

[[steps]]
type = "custom"
id = "tour"
title = "Quick Tour"
content = "Swipe left to archive."

[[steps]]
type = "summary"

[[steps]]
type = "denied"
message = "Maybe later, then."

[[steps]]
type = "thankyou"
`
	dir := t.TempDir()
	path := filepath.Join(dir, "hatch.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	def, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if !def.Wizard.AllowSkipping {
		t.Error("wizard.allow_skipping should be true")
	}
	if def.Wizard.Mascot {
		t.Error("wizard.mascot should be false")
	}
	if len(def.Steps) != 7 {
		t.Fatalf("steps len = %d, want 7", len(def.Steps))
	}

	cfg, err := def.Flow()
	if err != nil {
		t.Fatalf("Flow: %v", err)
	}

	if !cfg.AllowSkipping {
		t.Error("AllowSkipping not carried over")
	}
	if cfg.MascotEnabled {
		t.Error("MascotEnabled should be false")
	}

	steps := cfg.Steps()
	w, ok := steps[0].(flow.WelcomeStep)
	if !ok {
		t.Fatalf("step 0: expected WelcomeStep, got %T", steps[0])
	}
	if w.DisplayTitle() != "Hey there" {
		t.Errorf("welcome title = %q", w.DisplayTitle())
	}

	p, ok := steps[1].(flow.PermissionStep)
	if !ok {
		t.Fatalf("step 1: expected PermissionStep, got %T", steps[1])
	}
	if p.Request.ID != "cam-main" {
		t.Errorf("permission id = %q, want %q", p.Request.ID, "cam-main")
	}
	if p.Request.DisplayTitle() != "Let us see" {
		t.Errorf("permission title = %q", p.Request.DisplayTitle())
	}

	// Permission steps without an explicit id fall back to the type name.
	p2 := steps[2].(flow.PermissionStep)
	if p2.Request.ID != "notifications" {
		t.Errorf("defaulted permission id = %q", p2.Request.ID)
	}
	if p2.Request.DisplayTitle() != "Notifications" {
		t.Errorf("defaulted permission title = %q", p2.Request.DisplayTitle())
	}

	c, ok := steps[3].(flow.CustomStep)
	if !ok {
		t.Fatalf("step 3: expected CustomStep, got %T", steps[3])
	}
	if c.StepID() != "custom-tour" {
		t.Errorf("custom step id = %q", c.StepID())
	}

	d := steps[5].(flow.DeniedStep)
	if d.DisplayMessage() != "Maybe later, then." {
		t.Errorf("denied message = %q", d.DisplayMessage())
	}
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/hatch.toml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaults(t *testing.T) {
	def := Defaults()

	cfg, err := def.Flow()
	if err != nil {
		t.Fatalf("Flow: %v", err)
	}
	if cfg.StepCount() != 6 {
		t.Errorf("default step count = %d, want 6", cfg.StepCount())
	}
	if !cfg.ShowProgressIndicator {
		t.Error("default show_progress should be true")
	}
	if cfg.AllowSkipping {
		t.Error("default allow_skipping should be false")
	}
}

func TestFlow_UnknownStepType(t *testing.T) {
	def := &Definition{Steps: []StepConfig{{Type: "fireworks"}}}
	if _, err := def.Flow(); err == nil {
		t.Error("expected error for unknown step type")
	}
}

func TestFlow_UnknownPermission(t *testing.T) {
	def := &Definition{Steps: []StepConfig{{Type: "permission", Permission: "bluetooth"}}}
	if _, err := def.Flow(); err == nil {
		t.Error("expected error for unknown permission type")
	}
}

func TestFlow_CustomRequiresID(t *testing.T) {
	def := &Definition{Steps: []StepConfig{{Type: "custom", Title: "x"}}}
	if _, err := def.Flow(); err == nil {
		t.Error("expected error for custom step without id")
	}
}
