package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/slashcmd-labs/slashcmd/internal/branding"
)

// Permission constants for created directories and command files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// ProjectCommandsDir returns the commands directory under a project root,
// e.g., ProjectCommandsDir("/work/app") → "/work/app/.claude/commands".
func ProjectCommandsDir(root string) string {
	return filepath.Join(root, branding.HomeDir(), branding.CommandsDir())
}

// UserCommandsDir returns the commands directory under a home directory,
// e.g., UserCommandsDir("/home/me") → "/home/me/.claude/commands".
func UserCommandsDir(home string) string {
	return filepath.Join(home, branding.HomeDir(), branding.CommandsDir())
}

// CommandsDir resolves the target directory for a scope. The project root
// and home directory are passed in explicitly so callers (and tests) control
// where the filesystem is touched.
func CommandsDir(scope Scope, root, home string) string {
	if scope == ScopeUser {
		return UserCommandsDir(home)
	}
	return ProjectCommandsDir(root)
}

// ResolveProjectRoot returns the directory project-scoped commands are
// resolved against: the process working directory.
func ResolveProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// ResolveHome returns the directory user-scoped commands are resolved
// against. It checks the SLASHCMD_HOME environment variable first, then
// falls back to the invoking user's home directory.
func ResolveHome() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}
