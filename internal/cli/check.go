package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/slashcmd-labs/slashcmd/internal/command"
	"github.com/slashcmd-labs/slashcmd/internal/frontmatter"
	"github.com/slashcmd-labs/slashcmd/internal/workspace"
	"github.com/spf13/cobra"
)

var checkScope string

var checkCmd = &cobra.Command{
	Use:   "check [<name> | <path>]",
	Short: "Validate slash command frontmatter",
	Long: `Validate the YAML frontmatter of slash command files against the
expected field shapes, and report leftover TODO placeholders.

Without an argument, every command in the project and user directories is
checked. With an argument, checks one command by name or one file by path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkScope, "scope", "", "Only check one scope (project or user)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var targets []workspace.Entry

	if len(args) == 1 {
		target, err := resolveCheckTarget(args[0])
		if err != nil {
			return err
		}
		targets = []workspace.Entry{target}
	} else {
		entries, err := discoverScoped(checkScope)
		if err != nil {
			return err
		}
		targets = entries
	}

	if len(targets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No slash commands found.")
		return nil
	}

	failures := 0
	for _, e := range targets {
		if !checkFile(cmd.OutOrStdout(), e) {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d command file(s) failed validation", failures)
	}
	return nil
}

// resolveCheckTarget accepts either a file path or a command name searched
// across the scope directories (project first).
func resolveCheckTarget(arg string) (workspace.Entry, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return workspace.Entry{
			Name: command.NormalizeName(filepath.Base(arg)),
			Path: arg,
		}, nil
	}

	name := command.NormalizeName(arg)
	root, err := resolveRoot()
	if err != nil {
		return workspace.Entry{}, err
	}
	home, err := workspace.ResolveHome()
	if err != nil {
		return workspace.Entry{}, err
	}

	scopes := []workspace.Scope{workspace.ScopeProject, workspace.ScopeUser}
	if checkScope != "" {
		scope, err := workspace.ParseScope(checkScope)
		if err != nil {
			return workspace.Entry{}, err
		}
		scopes = []workspace.Scope{scope}
	}
	for _, scope := range scopes {
		e, ok, err := workspace.Find(workspace.CommandsDir(scope, root, home), scope, name)
		if err != nil {
			return workspace.Entry{}, err
		}
		if ok {
			return e, nil
		}
	}
	return workspace.Entry{}, fmt.Errorf("no such command: /%s", name)
}

// checkFile validates one command file and prints its report lines.
// Returns false when the file fails validation.
func checkFile(w io.Writer, e workspace.Entry) bool {
	label := "/" + e.Name
	if e.Scope != "" {
		label = fmt.Sprintf("/%s (%s)", e.Name, e.Scope)
	}

	data, err := os.ReadFile(e.Path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", label, err)
		return false
	}

	header, _, err := frontmatter.Split(data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", label, err)
		return false
	}

	todos := bytes.Count(data, []byte("TODO:"))

	if header == nil {
		fmt.Fprintf(w, "  [WARN] %s: no frontmatter (description recommended)\n", label)
		reportTodos(w, todos)
		return true
	}

	res, err := frontmatter.Validate(header)
	if err != nil {
		// YAML that does not parse, typically an unquoted placeholder.
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", label, err)
		reportTodos(w, todos)
		return false
	}
	if !res.Valid {
		fmt.Fprintf(w, "  [FAIL] %s:\n", label)
		for _, issue := range res.Issues {
			fmt.Fprintf(w, "         %s: %s\n", issue.Path, issue.Message)
		}
		reportTodos(w, todos)
		return false
	}

	c, _, err := frontmatter.Parse(data)
	if err == nil && c.Description == "" {
		fmt.Fprintf(w, "  [WARN] %s: frontmatter has no description\n", label)
		reportTodos(w, todos)
		return true
	}

	fmt.Fprintf(w, "  [ OK ] %s\n", label)
	reportTodos(w, todos)
	return true
}

func reportTodos(w io.Writer, todos int) {
	if todos > 0 {
		fmt.Fprintf(w, "         %d TODO placeholder(s) remaining\n", todos)
	}
}
