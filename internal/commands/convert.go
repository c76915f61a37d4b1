package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wrenlabs/wren/convention"
	"github.com/wrenlabs/wren/input"
	"github.com/wrenlabs/wren/internal/conventions"
	"github.com/wrenlabs/wren/output"
)

// ConvertCmd creates the convert command
func ConvertCmd() *cobra.Command {
	var from, to, definitionsPath string

	cmd := &cobra.Command{
		Use:   "convert <identifier>...",
		Short: "Convert identifiers between naming conventions",
		Long: `Convert rewrites identifiers from one naming convention into another.

Source and target come from --from/--to, from the convert defaults in
wren.yml, or (when running in a terminal) from an interactive picker.
Converted identifiers are printed plain, one per line, so output can be
piped.`,
		Example: `  wren convert --from CamelCase --to SnakeCase userName createdAt
  wren convert --from SnakeCase --to PascalCase user_name
  wren convert --conventions team.yml --from CamelCase --to DotCase userName`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if definitionsPath != "" {
				defs, err := conventions.Parse(definitionsPath)
				if err != nil {
					return err
				}
				if err := conventions.RegisterAll(defs); err != nil {
					return err
				}
			}

			source, err := resolveConvention("Convert from", from, cfg.From)
			if err != nil {
				return err
			}
			target, err := resolveConvention("Convert to", to, cfg.To)
			if err != nil {
				return err
			}
			output.Verbose(fmt.Sprintf("converting %s → %s", source.Name(), target.Name()))

			for _, identifier := range args {
				if !source.DoesFollow(identifier) {
					mismatch := fmt.Sprintf("%s does not follow %s", identifier, source.Name())
					if input.Interactive() {
						if !input.Confirm(mismatch+"; convert anyway?", true) {
							return fmt.Errorf("aborted: %s", mismatch)
						}
					} else {
						output.Verbose(mismatch + "; converting best-effort")
					}
				}

				converted, err := source.ConvertTo(target, identifier)
				if err != nil {
					return fmt.Errorf("failed to convert %q: %w", identifier, err)
				}
				fmt.Println(converted)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "Source convention name")
	cmd.Flags().StringVarP(&to, "to", "t", "", "Target convention name")
	cmd.Flags().StringVar(&definitionsPath, "conventions", "", "YAML file with extra convention definitions")

	return cmd
}

// resolveConvention picks a convention from, in order: the flag, the
// wren.yml default, or an interactive picker when one is possible.
func resolveConvention(prompt, flagValue, configValue string) (*convention.Convention, error) {
	name := flagValue
	if name == "" {
		name = configValue
	}

	if name == "" {
		if !input.Interactive() {
			return nil, fmt.Errorf("no convention given (use --from/--to, or set convert defaults in %s)", conventions.ConfigFile)
		}
		picked, err := input.SelectConvention(prompt, conventionChoices())
		if errors.Is(err, input.ErrCancelled) {
			return nil, fmt.Errorf("no convention selected")
		}
		if err != nil {
			return nil, err
		}
		name = picked
	}

	return lookupConvention(name)
}
