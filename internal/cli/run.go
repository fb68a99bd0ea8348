package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/druarnfield/hatch/internal/config"
	"github.com/druarnfield/hatch/internal/flow"
	"github.com/druarnfield/hatch/internal/logging"
	"github.com/druarnfield/hatch/internal/state"
	"github.com/druarnfield/hatch/internal/tui/components"
	"github.com/druarnfield/hatch/internal/tui/wizard"
)

var (
	flagDefinition   string
	flagMinimal      bool
	flagNoMascot     bool
	flagNoAnimations bool
	flagNoProgress   bool
	flagSkippable    bool
)

func newRunCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the onboarding wizard",
		Long:  "Run the onboarding flow from a TOML definition, or from the built-in default when none exists.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(version)
		},
	}

	cmd.Flags().StringVar(&flagDefinition, "definition", "", "Path to a wizard definition file")
	cmd.Flags().BoolVar(&flagMinimal, "minimal", false, "Use the minimal preset (welcome and thank-you only)")
	cmd.Flags().BoolVar(&flagNoMascot, "no-mascot", false, "Hide the mascot")
	cmd.Flags().BoolVar(&flagNoAnimations, "no-animations", false, "Disable transition delays")
	cmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "Hide the progress indicator")
	cmd.Flags().BoolVar(&flagSkippable, "skippable", false, "Allow skipping permission and custom steps")

	return cmd
}

func loadConfiguration() (flow.Configuration, error) {
	if flagMinimal {
		return flow.MinimalConfiguration(), nil
	}

	path := flagDefinition
	if path == "" {
		path = config.DefinitionFilePath()
	}

	def, err := config.LoadFromFile(path)
	if err != nil {
		if flagDefinition == "" && errors.Is(err, os.ErrNotExist) {
			// No file in the default location: fall back to the preset.
			def = config.Defaults()
		} else {
			return flow.Configuration{}, fmt.Errorf("loading definition: %w", err)
		}
	} else {
		fmt.Printf("Definition: %s\n\n", path)
	}

	return def.Flow()
}

func runWizard(version string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	// Flag overrides.
	if flagNoMascot {
		cfg.MascotEnabled = false
	}
	if flagNoAnimations {
		cfg.AnimationsEnabled = false
	}
	if flagNoProgress {
		cfg.ShowProgressIndicator = false
	}
	if flagSkippable {
		cfg.AllowSkipping = true
	}

	logger, err := logging.Setup(config.LogFilePath(), flagVerbose)
	if err != nil {
		logger = slog.New(logging.NopHandler{})
	}

	ctrl := flow.NewController(cfg, logger)

	var final []flow.PermissionRequest
	ctrl.SetOnCompletion(func(perms []flow.PermissionRequest) {
		final = perms
	})

	dismissed := false
	m := wizard.New(ctrl, components.DefaultStyles()).
		WithOnDismiss(func() { dismissed = true })

	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	result := out.(wizard.Model)

	fmt.Println()
	if result.Completed() {
		printOutcome(final)
	} else if dismissed {
		fmt.Println("Onboarding dismissed.")
	}

	saveRun(logger, version, result, final, dismissed)
	return nil
}

func printOutcome(perms []flow.PermissionRequest) {
	if len(perms) == 0 {
		fmt.Println("Onboarding complete.")
		return
	}

	fmt.Println("Onboarding complete:")
	for _, p := range perms {
		fmt.Printf("  %s: %s\n", p.DisplayTitle(), p.State)
	}
}

func saveRun(logger *slog.Logger, version string, result wizard.Model, final []flow.PermissionRequest, dismissed bool) {
	st, err := state.Load(config.StateFilePath())
	if err != nil {
		st = &state.State{}
	}

	outcome := "dismissed"
	perms := result.Permissions()
	if result.Completed() {
		outcome = "completed"
		perms = final
	}

	var approved, denied []string
	for _, p := range perms {
		switch p.State {
		case flow.StateApproved:
			approved = append(approved, p.ID)
		case flow.StateDenied:
			denied = append(denied, p.ID)
		}
	}

	st.RecordRun(outcome, approved, denied)
	st.HatchVersion = version
	if err := state.Save(config.StateFilePath(), st); err != nil {
		logger.Error("failed to save state", "error", err)
	}
}
