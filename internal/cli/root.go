package cli

import (
	"fmt"
	"os"

	"github.com/slashcmd-labs/slashcmd/internal/branding"
	"github.com/slashcmd-labs/slashcmd/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// rootDir overrides the project root for all commands (default: cwd).
var rootDir string

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <command-name> [--project | --user] [--with-tools]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new slash command definition file into
.claude/commands/ under the current project (--project, the default) or under
your home directory (--user). The generated file carries YAML frontmatter and
TODO placeholders ready to be filled in.

Examples:
  ` + branding.CLIName() + ` review --project
  ` + branding.CLIName() + ` my-helper --user --with-tools
  ` + branding.CLIName() + ` fix-issue`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNew,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "Project root to operate in (default: current directory)")

	rootCmd.Flags().BoolVar(&newProject, "project", false, "Create in ./.claude/commands (default)")
	rootCmd.Flags().BoolVar(&newUser, "user", false, "Create in ~/.claude/commands")
	rootCmd.Flags().BoolVar(&newWithTools, "with-tools", false, "Include the allowed-tools template sections")
	rootCmd.MarkFlagsMutuallyExclusive("project", "user")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed once here; main maps them to exit code 1.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// resolveRoot returns the project root: the --dir override or the cwd.
func resolveRoot() (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}
	return workspace.ResolveProjectRoot()
}
