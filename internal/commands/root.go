package commands

import (
	"github.com/spf13/cobra"
	"github.com/wrenlabs/wren"
	"github.com/wrenlabs/wren/internal/conventions"
	"github.com/wrenlabs/wren/output"
)

// cfg holds the loaded wren.yml for the lifetime of one invocation.
var cfg = conventions.DefaultConfig()

// RootCmd creates and returns the root command for the wren CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Identifier naming-convention toolkit",
		Long: `Wren checks and converts identifiers between naming conventions.

Ten conventions are built in, from camelCase to SCREAMING-KEBAB-CASE, and
you can declare your own in wren.yml:
• Check that identifiers follow a convention
• Convert identifiers from one convention to another
• List everything registered, with examples

Learn more: https://github.com/wrenlabs/wren`,
		Version:      wren.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetVerbose(verbose)

			loaded, err := conventions.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			if len(cfg.Conventions) > 0 {
				output.Verbose("registering custom conventions from " + conventions.ConfigFile)
			}
			return conventions.RegisterAll(cfg.Conventions)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
