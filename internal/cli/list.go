package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/slashcmd-labs/slashcmd/internal/frontmatter"
	"github.com/slashcmd-labs/slashcmd/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	listScope string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing slash commands",
	Long:  `List slash command files found in the project and user commands directories.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listScope, "scope", "", "Only list one scope (project or user)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one discovered command enriched with its description.
type listEntry struct {
	Name        string `json:"name"`
	Scope       string `json:"scope"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := discoverScoped(listScope)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No slash commands found.")
		return nil
	}

	rows := make([]listEntry, 0, len(entries))
	for _, e := range entries {
		row := listEntry{
			Name:  e.Name,
			Scope: e.Scope.String(),
			Path:  e.Path,
		}
		// Best-effort: unfinished frontmatter simply shows no description.
		if c, _, err := frontmatter.ParseFile(e.Path); err == nil {
			row.Description = c.Description
		}
		rows = append(rows, row)
	}

	if listJSON {
		return printListJSON(cmd, rows)
	}
	return printListTable(cmd, rows)
}

// discoverScoped returns entries from both scope directories, or from one
// when filter names it. Project entries come first.
func discoverScoped(filter string) ([]workspace.Entry, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, err
	}
	home, err := workspace.ResolveHome()
	if err != nil {
		return nil, err
	}

	scopes := []workspace.Scope{workspace.ScopeProject, workspace.ScopeUser}
	if filter != "" {
		scope, err := workspace.ParseScope(filter)
		if err != nil {
			return nil, err
		}
		scopes = []workspace.Scope{scope}
	}

	var entries []workspace.Entry
	for _, scope := range scopes {
		found, err := workspace.Discover(workspace.CommandsDir(scope, root, home), scope)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	return entries, nil
}

func printListTable(cmd *cobra.Command, rows []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSCOPE\tDESCRIPTION")
	for _, r := range rows {
		desc := r.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "/%s\t%s\t%s\n", r.Name, r.Scope, desc)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, rows []listEntry) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
