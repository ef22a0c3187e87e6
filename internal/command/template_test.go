package command

import (
	"strings"
	"testing"
)

const wantSimple = `---
argument-hint: [arguments]
description: TODO: Describe what /review does
---

TODO: Write your prompt here.

Use $ARGUMENTS for all arguments, or $1, $2 for positional.
Reference files with @path/to/file.
`

const wantTools = `---
allowed-tools: Bash(command:*)
argument-hint: [arguments]
description: TODO: Describe what /deploy does
---

## Context

- Current state: !` + "`" + `echo "TODO: Add context commands"` + "`" + `

## Task

TODO: Describe the task using $ARGUMENTS or $1, $2, etc.
`

func TestRenderSimple(t *testing.T) {
	got, err := Render(VariantSimple, "review")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != wantSimple {
		t.Errorf("simple template mismatch\n--- got ---\n%s\n--- want ---\n%s", got, wantSimple)
	}
}

func TestRenderTools(t *testing.T) {
	got, err := Render(VariantTools, "deploy")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != wantTools {
		t.Errorf("tools template mismatch\n--- got ---\n%s\n--- want ---\n%s", got, wantTools)
	}
}

func TestRenderVariantSections(t *testing.T) {
	simple, err := Render(VariantSimple, "x")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for _, unwanted := range []string{"allowed-tools", "## Context", "## Task"} {
		if strings.Contains(simple, unwanted) {
			t.Errorf("simple template should not contain %q", unwanted)
		}
	}

	tools, err := Render(VariantTools, "x")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for _, wanted := range []string{"allowed-tools", "## Context", "## Task"} {
		if !strings.Contains(tools, wanted) {
			t.Errorf("tools template should contain %q", wanted)
		}
	}
}

func TestRenderUnknownVariant(t *testing.T) {
	if _, err := Render(Variant("fancy"), "x"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}
