package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wrenlabs/wren/output"
)

// CheckCmd creates the check command
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <convention> <identifier>...",
		Short: "Check that identifiers follow a naming convention",
		Long: `Check validates identifiers against a registered naming convention.

Every identifier is reported individually; the command exits non-zero if
any of them fail.`,
		Example: `  wren check SnakeCase user_name created_at
  wren check CamelCase firstName last_name`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := lookupConvention(args[0])
			if err != nil {
				return err
			}

			identifiers := args[1:]
			failed := 0
			for _, identifier := range identifiers {
				if conv.DoesFollow(identifier) {
					output.Success(fmt.Sprintf("%s follows %s", identifier, conv.Name()))
				} else {
					output.Error(fmt.Sprintf("%s does not follow %s", identifier, conv.Name()))
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d identifiers failed", failed, len(identifiers))
			}
			return nil
		},
	}
}
