package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hatch",
		Short: "Onboarding wizard toolkit",
		Long:  "hatch runs declarative onboarding flows: welcome, permission prompts, summary and terminal screens stitched together from a single definition.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Show detailed log output")

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newRunCmd(version))
	cmd.AddCommand(newStepsCmd())

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print hatch version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("hatch", version)
		},
	}
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}
