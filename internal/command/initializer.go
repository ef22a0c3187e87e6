package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/slashcmd-labs/slashcmd/internal/workspace"
)

// Options configures one scaffold invocation. ProjectRoot and Home are
// injected rather than read from process state so callers control exactly
// where the filesystem is touched.
type Options struct {
	Name        string          // raw command name, may carry a trailing .md
	Scope       workspace.Scope // which commands directory to target
	WithTools   bool            // select the tools template variant
	ProjectRoot string          // directory .claude/commands resolves against for ScopeProject
	Home        string          // directory .claude/commands resolves against for ScopeUser
}

// Result describes a successfully created command file.
type Result struct {
	Name    string  // normalized command name
	Path    string  // path of the written file
	Variant Variant // template variant that was rendered
}

// Initialize scaffolds a new slash command file. It validates the name,
// ensures the scope's commands directory exists, renders the template, and
// creates the file with an exclusive create so an existing file is never
// touched. Every failure is terminal; the file is either fully written or
// absent.
func Initialize(opts Options) (*Result, error) {
	name := NormalizeName(opts.Name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	variant := VariantSimple
	if opts.WithTools {
		variant = VariantTools
	}
	content, err := Render(variant, name)
	if err != nil {
		return nil, err
	}

	dir := workspace.CommandsDir(opts.Scope, opts.ProjectRoot, opts.Home)
	if err := os.MkdirAll(dir, workspace.DirPerm); err != nil {
		return nil, fmt.Errorf("creating commands directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, workspace.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	return &Result{Name: name, Path: path, Variant: variant}, nil
}
