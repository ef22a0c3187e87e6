package workspace

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// CheckDir reports the health of a commands directory: whether it exists,
// is actually a directory, and carries a writable mode. A missing directory
// is not a failure since it is created on the next scaffold. Returns false only
// on hard failures.
func CheckDir(w io.Writer, label, dir string) bool {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "  [MISS] %s commands dir %s does not exist (created on first use)\n", label, dir)
		return true
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %s commands dir %s: %v\n", label, dir, err)
		return false
	case !info.IsDir():
		fmt.Fprintf(w, "  [FAIL] %s is not a directory\n", dir)
		return false
	case info.Mode().Perm()&0200 == 0:
		fmt.Fprintf(w, "  [WARN] %s commands dir %s is not writable\n", label, dir)
		return true
	default:
		fmt.Fprintf(w, "  [ OK ] %s commands dir %s\n", label, dir)
		return true
	}
}

// Shadowed returns the names that exist in both entry sets. The host tool
// resolves project commands ahead of user commands, so a user command with
// the same trigger is silently shadowed.
func Shadowed(project, user []Entry) []string {
	inProject := make(map[string]bool, len(project))
	for _, e := range project {
		inProject[e.Name] = true
	}
	var names []string
	for _, e := range user {
		if inProject[e.Name] {
			names = append(names, e.Name)
		}
	}
	return names
}
