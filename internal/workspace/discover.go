package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a slash command file found in a commands directory.
type Entry struct {
	Name  string `json:"name"`  // trigger name, "/"-separated for namespaced commands
	Scope Scope  `json:"scope"` // which scope directory it was found in
	Path  string `json:"path"`  // absolute or root-relative file path
}

// Discover walks a commands directory and returns all command files in it,
// sorted by name. Subdirectories contribute namespaced names
// ("git/commit" for git/commit.md). A missing directory yields no entries
// and no error.
func Discover(dir string, scope Scope) ([]Entry, error) {
	var out []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, Entry{
			Name:  strings.TrimSuffix(filepath.ToSlash(rel), ".md"),
			Scope: scope,
			Path:  path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading commands directory %s: %w", dir, err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Find returns the entry for a command name in dir, or false if absent.
func Find(dir string, scope Scope, name string) (Entry, bool, error) {
	entries, err := Discover(dir, scope)
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range entries {
		if e.Name == name {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}
