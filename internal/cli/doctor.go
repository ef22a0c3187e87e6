package cli

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/slashcmd-labs/slashcmd/internal/config"
	"github.com/slashcmd-labs/slashcmd/internal/workspace"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the slash command workspace",
	Long: `Run diagnostic checks: commands directories, the settings file,
cross-scope command shadowing, and the min_version pin (when set).`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	root, err := resolveRoot()
	if err != nil {
		return err
	}
	home, err := workspace.ResolveHome()
	if err != nil {
		return err
	}
	projectDir := workspace.ProjectCommandsDir(root)
	userDir := workspace.UserCommandsDir(home)

	fmt.Fprintln(w, "Workspace check:")
	ok := workspace.CheckDir(w, "project", projectDir)
	ok = workspace.CheckDir(w, "user", userDir) && ok

	// Settings file.
	if err := config.Load(); err != nil {
		fmt.Fprintf(w, "  [FAIL] settings: %v\n", err)
		ok = false
	} else {
		fmt.Fprintf(w, "  [ OK ] settings file %s\n", config.FilePath())
	}

	// Shadowing: the host tool resolves project commands first.
	project, err := workspace.Discover(projectDir, workspace.ScopeProject)
	if err != nil {
		return err
	}
	user, err := workspace.Discover(userDir, workspace.ScopeUser)
	if err != nil {
		return err
	}
	for _, name := range workspace.Shadowed(project, user) {
		fmt.Fprintf(w, "  [WARN] /%s exists in both scopes; the project copy takes precedence\n", name)
	}

	// Version pin.
	if min := config.Get(config.KeyMinVersion); min != "" {
		satisfied, err := versionAtLeast(buildVersion, min)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [WARN] min_version: %v\n", err)
		case !satisfied:
			fmt.Fprintf(w, "  [FAIL] running version %s is older than pinned min_version %s\n", buildVersion, min)
			return fmt.Errorf("version %s does not satisfy min_version %s", buildVersion, min)
		default:
			fmt.Fprintf(w, "  [ OK ] version %s satisfies min_version %s\n", buildVersion, min)
		}
	}

	if !ok {
		return fmt.Errorf("workspace check reported failures")
	}
	fmt.Fprintln(w, "No problems found.")
	return nil
}

// versionAtLeast reports whether current >= min under semver ordering.
// Development builds ("dev") always satisfy the pin.
func versionAtLeast(current, min string) (bool, error) {
	if current == "dev" {
		return true, nil
	}
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing running version %q: %w", current, err)
	}
	mv, err := semver.NewVersion(strings.TrimPrefix(min, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing min_version %q: %w", min, err)
	}
	return cv.Compare(mv) >= 0, nil
}
