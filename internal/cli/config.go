package cli

import (
	"fmt"

	"github.com/slashcmd-labs/slashcmd/internal/command"
	"github.com/slashcmd-labs/slashcmd/internal/config"
	"github.com/slashcmd-labs/slashcmd/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.claude/slashcmd.yaml.

Recognized keys:
  default_scope     project or user (scope used when no flag is given)
  default_template  simple or tools (template used when no flag is given)
  min_version       minimum tool version enforced by 'doctor'`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a settings value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := validateSetting(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a settings value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

// validateSetting rejects values that would make later invocations fail.
func validateSetting(key, value string) error {
	switch key {
	case config.KeyDefaultScope:
		_, err := workspace.ParseScope(value)
		return err
	case config.KeyDefaultTemplate:
		if value != string(command.VariantSimple) && value != string(command.VariantTools) {
			return fmt.Errorf("invalid template %q: must be %q or %q",
				value, command.VariantSimple, command.VariantTools)
		}
		return nil
	case config.KeyMinVersion:
		return nil
	default:
		return fmt.Errorf("unknown settings key %q", key)
	}
}
