package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCommandFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestListEmpty(t *testing.T) {
	root, _ := testDirs(t)

	out, err := runCLI("list", "--dir", root)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out, "No slash commands found.") {
		t.Errorf("output = %q", out)
	}
}

func TestListTable(t *testing.T) {
	root, home := testDirs(t)
	projDir := filepath.Join(root, ".claude", "commands")
	userDir := filepath.Join(home, ".claude", "commands")
	writeCommandFile(t, projDir, "review.md", "---\ndescription: \"Review a PR\"\n---\nbody\n")
	writeCommandFile(t, userDir, "fix-issue.md", "no frontmatter here\n")

	out, err := runCLI("list", "--dir", root)
	if err != nil {
		t.Fatalf("execute error: %v\n%s", err, out)
	}

	if !strings.Contains(out, "/review") || !strings.Contains(out, "Review a PR") {
		t.Errorf("project command missing from table:\n%s", out)
	}
	if !strings.Contains(out, "/fix-issue") {
		t.Errorf("user command missing from table:\n%s", out)
	}
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "SCOPE") {
		t.Errorf("table header missing:\n%s", out)
	}
}

func TestListScopeFilterAndJSON(t *testing.T) {
	root, home := testDirs(t)
	writeCommandFile(t, filepath.Join(root, ".claude", "commands"), "a.md", "x\n")
	writeCommandFile(t, filepath.Join(home, ".claude", "commands"), "b.md", "x\n")

	out, err := runCLI("list", "--dir", root, "--scope", "user", "--json")
	if err != nil {
		t.Fatalf("execute error: %v\n%s", err, out)
	}

	var rows []listEntry
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 1 || rows[0].Name != "b" || rows[0].Scope != "user" {
		t.Errorf("rows = %+v, want only user /b", rows)
	}
}
