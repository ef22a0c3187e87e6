package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckValidCommand(t *testing.T) {
	root, _ := testDirs(t)
	writeCommandFile(t, filepath.Join(root, ".claude", "commands"), "review.md",
		"---\ndescription: \"Review a PR\"\nargument-hint: \"[pr]\"\n---\nReview $1.\n")

	out, err := runCLI("check", "--dir", root)
	if err != nil {
		t.Fatalf("execute error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[ OK ] /review") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckFreshScaffoldFails(t *testing.T) {
	root, _ := testDirs(t)

	// Scaffold, then check: the unquoted TODO placeholder is not valid
	// YAML yet, and the placeholders are still present.
	if out, err := runCLI("deploy", "--dir", root); err != nil {
		t.Fatalf("scaffold error: %v\n%s", err, out)
	}
	out, err := runCLI("check", "deploy", "--dir", root)
	if err == nil {
		t.Fatalf("expected validation failure\n%s", out)
	}
	if !strings.Contains(out, "[FAIL] /deploy") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "TODO placeholder") {
		t.Errorf("TODO count missing:\n%s", out)
	}
}

func TestCheckWrongFieldType(t *testing.T) {
	root, _ := testDirs(t)
	writeCommandFile(t, filepath.Join(root, ".claude", "commands"), "bad.md",
		"---\ndescription: 42\n---\nbody\n")

	out, err := runCLI("check", "--dir", root)
	if err == nil {
		t.Fatalf("expected validation failure\n%s", out)
	}
	if !strings.Contains(out, "/description") {
		t.Errorf("issue path missing:\n%s", out)
	}
}

func TestCheckMissingDescriptionWarns(t *testing.T) {
	root, _ := testDirs(t)
	writeCommandFile(t, filepath.Join(root, ".claude", "commands"), "bare.md",
		"---\nargument-hint: \"[x]\"\n---\nbody\n")

	out, err := runCLI("check", "--dir", root)
	if err != nil {
		t.Fatalf("warning should not fail the check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[WARN] /bare") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckUnknownName(t *testing.T) {
	root, _ := testDirs(t)

	_, err := runCLI("check", "nope", "--dir", root)
	if err == nil || !strings.Contains(err.Error(), "no such command") {
		t.Fatalf("err = %v, want no-such-command", err)
	}
}
