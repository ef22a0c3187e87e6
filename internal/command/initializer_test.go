package command

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slashcmd-labs/slashcmd/internal/workspace"
)

func testOptions(t *testing.T, name string) Options {
	t.Helper()
	return Options{
		Name:        name,
		Scope:       workspace.ScopeProject,
		ProjectRoot: t.TempDir(),
		Home:        t.TempDir(),
	}
}

func readResult(t *testing.T, res *Result) string {
	t.Helper()
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("reading %s: %v", res.Path, err)
	}
	return string(data)
}

func TestInitializeProject(t *testing.T) {
	opts := testOptions(t, "review")
	res, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	wantPath := filepath.Join(opts.ProjectRoot, ".claude", "commands", "review.md")
	if res.Path != wantPath {
		t.Errorf("Path = %q, want %q", res.Path, wantPath)
	}

	want, err := Render(VariantSimple, "review")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := readResult(t, res); got != want {
		t.Errorf("content mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestInitializeUserScope(t *testing.T) {
	opts := testOptions(t, "x")
	opts.Scope = workspace.ScopeUser

	res, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	wantPath := filepath.Join(opts.Home, ".claude", "commands", "x.md")
	if res.Path != wantPath {
		t.Errorf("Path = %q, want %q", res.Path, wantPath)
	}
	// Nothing written under the project root.
	if _, err := os.Stat(filepath.Join(opts.ProjectRoot, ".claude")); !os.IsNotExist(err) {
		t.Errorf("project root was touched for a user-scope command")
	}
}

func TestInitializeInvalidName(t *testing.T) {
	for _, name := range []string{"foo bar", "foo/bar", ""} {
		t.Run(name, func(t *testing.T) {
			opts := testOptions(t, name)
			_, err := Initialize(opts)
			if !errors.Is(err, ErrInvalidName) {
				t.Fatalf("Initialize(%q) = %v, want ErrInvalidName", name, err)
			}
			// No filesystem write happened.
			if _, err := os.Stat(filepath.Join(opts.ProjectRoot, ".claude")); !os.IsNotExist(err) {
				t.Errorf("commands directory was created for an invalid name")
			}
		})
	}
}

func TestInitializeAlreadyExists(t *testing.T) {
	opts := testOptions(t, "x")
	res, err := Initialize(opts)
	if err != nil {
		t.Fatalf("first Initialize() error: %v", err)
	}
	first := readResult(t, res)

	opts.WithTools = true // second attempt must not rewrite with another variant
	_, err = Initialize(opts)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second Initialize() = %v, want ErrAlreadyExists", err)
	}

	if got := readResult(t, res); got != first {
		t.Error("existing file content was altered by the failed attempt")
	}
}

func TestInitializeStripsSuffix(t *testing.T) {
	opts := testOptions(t, "foo.md")
	res, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if filepath.Base(res.Path) != "foo.md" {
		t.Errorf("Base(Path) = %q, want foo.md", filepath.Base(res.Path))
	}
	if res.Name != "foo" {
		t.Errorf("Name = %q, want foo", res.Name)
	}
}

func TestInitializeWithTools(t *testing.T) {
	opts := testOptions(t, "deploy")
	opts.WithTools = true

	res, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if res.Variant != VariantTools {
		t.Errorf("Variant = %q, want tools", res.Variant)
	}

	got := readResult(t, res)
	for _, wanted := range []string{"allowed-tools", "## Context", "## Task", "/deploy"} {
		if !strings.Contains(got, wanted) {
			t.Errorf("tools output should contain %q", wanted)
		}
	}
}

func TestInitializeCreatesDirectoryChain(t *testing.T) {
	opts := testOptions(t, "fresh")
	// ProjectRoot from t.TempDir has no .claude/ at all; the full chain
	// must come into existence with the file.
	res, err := Initialize(opts)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	info, err := os.Stat(filepath.Dir(res.Path))
	if err != nil || !info.IsDir() {
		t.Fatalf("commands directory missing after Initialize: %v", err)
	}
}
