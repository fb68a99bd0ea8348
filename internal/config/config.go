// Package config loads declarative wizard definitions from TOML and binds
// them to flow configurations.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/druarnfield/hatch/internal/flow"
)

// Definition is the on-disk form of a wizard: behaviour flags plus an ordered
// list of steps.
type Definition struct {
	Wizard WizardConfig `toml:"wizard"`
	Steps  []StepConfig `toml:"steps"`
}

// WizardConfig holds the presentation capability flags.
type WizardConfig struct {
	AllowSkipping bool `toml:"allow_skipping"`
	ShowProgress  bool `toml:"show_progress"`
	Mascot        bool `toml:"mascot"`
	Animations    bool `toml:"animations"`
}

// StepConfig is one step entry. Type selects the case; the remaining fields
// apply only to the cases that use them.
type StepConfig struct {
	Type string `toml:"type"`

	// welcome / thankyou
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`

	// permission / custom
	ID string `toml:"id"`

	// permission
	Permission  string `toml:"permission"`
	Description string `toml:"description"`

	// denied
	Message string `toml:"message"`

	// custom
	Content string `toml:"content"`
}

// Defaults returns a Definition matching the default flow preset.
func Defaults() *Definition {
	return &Definition{
		Wizard: WizardConfig{
			ShowProgress: true,
			Mascot:       true,
			Animations:   true,
		},
		Steps: []StepConfig{
			{Type: "welcome"},
			{Type: "permission", ID: "camera", Permission: "camera"},
			{Type: "permission", ID: "location", Permission: "location"},
			{Type: "permission", ID: "notifications", Permission: "notifications"},
			{Type: "summary"},
			{Type: "thankyou"},
		},
	}
}

// LoadFromFile reads a wizard definition from path.
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}

	def := &Definition{}
	if err := toml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}

	return def, nil
}

// Flow binds the definition to an immutable flow.Configuration. Unknown step
// or permission types are errors here; the flow core itself stays total.
func (d *Definition) Flow() (flow.Configuration, error) {
	steps := make([]flow.Step, 0, len(d.Steps))
	for i, sc := range d.Steps {
		step, err := sc.step()
		if err != nil {
			return flow.Configuration{}, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}

	cfg := flow.NewConfiguration(steps...)
	cfg.AllowSkipping = d.Wizard.AllowSkipping
	cfg.ShowProgressIndicator = d.Wizard.ShowProgress
	cfg.MascotEnabled = d.Wizard.Mascot
	cfg.AnimationsEnabled = d.Wizard.Animations
	return cfg, nil
}

func (sc StepConfig) step() (flow.Step, error) {
	switch sc.Type {
	case "welcome":
		return flow.WelcomeStep{Title: sc.Title, Subtitle: sc.Subtitle}, nil
	case "permission":
		pt, err := flow.ParsePermissionType(sc.Permission)
		if err != nil {
			return nil, err
		}
		id := sc.ID
		if id == "" {
			id = sc.Permission
		}
		req := flow.NewPermissionRequest(id, pt)
		req.Title = sc.Title
		req.Description = sc.Description
		return flow.PermissionStep{Request: req}, nil
	case "summary":
		return flow.SummaryStep{}, nil
	case "thankyou":
		return flow.ThankYouStep{Title: sc.Title, Subtitle: sc.Subtitle}, nil
	case "denied":
		return flow.DeniedStep{Message: sc.Message}, nil
	case "custom":
		if sc.ID == "" {
			return nil, fmt.Errorf("custom step requires an id")
		}
		return flow.CustomStep{ID: sc.ID, Title: sc.Title, Content: sc.Content}, nil
	default:
		return nil, fmt.Errorf("unknown step type %q", sc.Type)
	}
}
