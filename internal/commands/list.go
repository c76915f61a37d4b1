package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wrenlabs/wren/output"
)

// ListCmd creates the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered naming conventions",
		Long:  `List shows every registered convention with a sample identifier rendered in it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			choices := conventionChoices()

			output.Info("Registered conventions:")
			for _, choice := range choices {
				output.Step(fmt.Sprintf("%-20s %s", choice.Name, choice.Sample))
			}
			return nil
		},
	}
}
