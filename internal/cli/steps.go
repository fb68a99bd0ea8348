package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/druarnfield/hatch/internal/flow"
)

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print the resolved step sequence",
		Long:  "Resolve the wizard definition and print its step sequence without entering the TUI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}
			printSteps(cfg)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDefinition, "definition", "", "Path to a wizard definition file")
	cmd.Flags().BoolVar(&flagMinimal, "minimal", false, "Use the minimal preset")

	return cmd
}

func printSteps(cfg flow.Configuration) {
	for i, s := range cfg.Steps() {
		marks := ""
		if s.Terminal() {
			marks += " (terminal)"
		}
		if s.Skippable() {
			marks += " (skippable)"
		}
		fmt.Printf("  [%d] %s%s\n", i, s.StepID(), marks)
	}
	fmt.Printf("\n%d steps", cfg.StepCount())
	if cfg.AllowSkipping {
		fmt.Print(", skipping allowed")
	}
	fmt.Println()
}
