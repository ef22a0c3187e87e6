package cli

import (
	"fmt"

	"github.com/slashcmd-labs/slashcmd/internal/command"
	"github.com/slashcmd-labs/slashcmd/internal/config"
	"github.com/slashcmd-labs/slashcmd/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	newProject   bool
	newUser      bool
	newWithTools bool
)

// runNew is the root command action: scaffold one slash command file.
func runNew(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return fmt.Errorf("command name required")
	}
	if len(args) > 1 {
		return fmt.Errorf("expected one command name, got %d arguments", len(args))
	}

	// Settings are best-effort here; doctor reports a broken file.
	_ = config.Load()

	scope, err := resolveScope(cmd)
	if err != nil {
		return err
	}
	withTools := newWithTools
	if !cmd.Flags().Changed("with-tools") && config.Get(config.KeyDefaultTemplate) == string(command.VariantTools) {
		withTools = true
	}

	root, err := resolveRoot()
	if err != nil {
		return err
	}
	home, err := workspace.ResolveHome()
	if err != nil {
		return err
	}

	res, err := command.Initialize(command.Options{
		Name:        args[0],
		Scope:       scope,
		WithTools:   withTools,
		ProjectRoot: root,
		Home:        home,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created /%s at %s\n", res.Name, res.Path)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Edit %s\n", res.Path)
	fmt.Fprintln(out, "  2. Update the description in frontmatter")
	fmt.Fprintln(out, "  3. Replace TODO placeholders with your prompt")
	if res.Variant == command.VariantTools {
		fmt.Fprintln(out, "  4. Configure allowed-tools for your use case")
	}
	return nil
}

// resolveScope picks the target scope: explicit flags win, then the
// default_scope setting, then project.
func resolveScope(cmd *cobra.Command) (workspace.Scope, error) {
	switch {
	case newUser:
		return workspace.ScopeUser, nil
	case newProject:
		return workspace.ScopeProject, nil
	}
	if v := config.Get(config.KeyDefaultScope); v != "" {
		scope, err := workspace.ParseScope(v)
		if err != nil {
			return "", fmt.Errorf("settings key %s: %w", config.KeyDefaultScope, err)
		}
		return scope, nil
	}
	return workspace.ScopeProject, nil
}
